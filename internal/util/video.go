package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoInfo resume os metadados de um vídeo enviado.
type VideoInfo struct {
	Duration float64 `json:"duration"` // segundos
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
}

// ProbeVideo extrai a duração de um vídeo local com ffprobe. Usada no upload
// de vídeos de treinamento para preencher Training.Duration.
func ProbeVideo(videoPath string) (*VideoInfo, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("arquivo de vídeo não encontrado: %w", err)
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler metadados do vídeo: %w", err)
	}

	var result struct {
		Format struct {
			Duration   string `json:"duration"`
			FormatName string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("falha ao interpretar metadados do vídeo: %w", err)
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("duração inválida nos metadados: %w", err)
	}

	return &VideoInfo{
		Duration: duration,
		Format:   result.Format.FormatName,
		Size:     fileInfo.Size(),
	}, nil
}
