package service

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

// TaxonomyService administra categorias e departamentos.
type TaxonomyService struct {
	categoryRepo   *repository.CategoryRepository
	departmentRepo *repository.DepartmentRepository
}

func NewTaxonomyService(categoryRepo *repository.CategoryRepository, departmentRepo *repository.DepartmentRepository) *TaxonomyService {
	return &TaxonomyService{categoryRepo: categoryRepo, departmentRepo: departmentRepo}
}

func (s *TaxonomyService) Categories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *TaxonomyService) CreateCategory(c *model.Category) error {
	return s.categoryRepo.Create(c)
}

func (s *TaxonomyService) UpdateCategory(c *model.Category) error {
	return s.categoryRepo.Update(c)
}

func (s *TaxonomyService) DeleteCategory(id string) error {
	return s.categoryRepo.Delete(id)
}

func (s *TaxonomyService) Departments() ([]model.Department, error) {
	return s.departmentRepo.FindAll()
}

func (s *TaxonomyService) CreateDepartment(d *model.Department) error {
	return s.departmentRepo.Create(d)
}

func (s *TaxonomyService) UpdateDepartment(d *model.Department) error {
	return s.departmentRepo.Update(d)
}

// DeleteDepartment recusa a remoção enquanto houver usuários ou conteúdos
// apontando para o departamento.
func (s *TaxonomyService) DeleteDepartment(id string) error {
	all, err := s.departmentRepo.FindAll()
	if err != nil {
		return err
	}
	var name string
	for _, d := range all {
		if d.ID == id {
			name = d.Name
			break
		}
	}
	if name != "" {
		inUse, err := s.departmentRepo.InUse(name)
		if err != nil {
			return err
		}
		if inUse {
			return util.ErrDepartmentInUse
		}
	}
	return s.departmentRepo.Delete(id)
}
