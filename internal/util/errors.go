package util

import "errors"

var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailRegistered    = errors.New("este e-mail já está cadastrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas ou usuário inativo")

	ErrTrainingNotFound = errors.New("treinamento não encontrado")
	ErrSimuladoNotFound = errors.New("simulado não encontrado")
	ErrContentInactive  = errors.New("conteúdo indisponível")

	// ErrInvalidQuestionSet indica que o motor de notas foi chamado com zero
	// perguntas. A validação do lado admin impede a ativação de questionários
	// vazios; chegar aqui é violação de pré-condição.
	ErrInvalidQuestionSet = errors.New("conjunto de perguntas inválido (vazio)")

	ErrQuestionnaireEmpty   = errors.New("o questionário precisa ter pelo menos uma pergunta")
	ErrQuestionWithoutKey   = errors.New("toda pergunta precisa ter a resposta correta marcada")
	ErrRetryCountInvalid    = errors.New("a política de tentativas limitadas exige um máximo de pelo menos 1")
	ErrPdiEmployeeRequired  = errors.New("selecione o funcionário do plano de desenvolvimento")
	ErrImportNotConfirmed   = errors.New("a importação substitui todos os dados e exige confirmação explícita")
	ErrAttemptNotAllowed    = errors.New("tentativa não permitida pela política do simulado")
	ErrAnswersRequired      = errors.New("este treinamento tem questionário e exige as respostas para concluir")
	ErrDepartmentInUse      = errors.New("departamento em uso por usuários ou conteúdos")
	ErrBadgeNameTaken       = errors.New("já existe uma medalha com este nome")
	ErrUnknownCollection    = errors.New("coleção desconhecida no arquivo de importação")
	ErrTrilhaWithoutSteps   = errors.New("a trilha precisa ter pelo menos um treinamento")
)
