package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	Diagram DiagramConfig
}

// DiagramConfig — параметры отображения и растеризации чертежей.
type DiagramConfig struct {
	Padding   float64
	FontSize  float64
	PNGWidth  int
	PNGHeight int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		Diagram: DiagramConfig{
			Padding:   getEnvAsFloat("DIAGRAM_PADDING", 24),
			FontSize:  getEnvAsFloat("DIAGRAM_FONT_SIZE", 14),
			PNGWidth:  getEnvAsInt("DIAGRAM_PNG_WIDTH", 800),
			PNGHeight: getEnvAsInt("DIAGRAM_PNG_HEIGHT", 600),
		},
	}
}

// Get возвращает значение переменной окружения или defaultVal.
func Get(key, defaultVal string) string {
	return getEnv(key, defaultVal)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
