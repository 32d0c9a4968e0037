package configuration

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
)

// путь к необязательному файлу с переменными окружения
const envFile = "./.env"

// ConfLog — параметры логгера
type ConfLog struct {
	Level string `env:"LOG_LEVEL" env-default:"error"`
}

// Config — корневая структура конфигурации
type Config struct {
	AppName string `env:"APP_NAME" env-default:"LongHandCalculator"`
	AppEnv  string `env:"APP_ENV"  env-default:"production"`
	Log     ConfLog
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		AppName: "LongHandCalculator",
		AppEnv:  "production",
		Log:     ConfLog{Level: "error"},
	}
}

// ReadConfig загружает .env файл из текущего каталога, если он есть,
// иначе читает переменные окружения. Файл для калькулятора не обязателен.
func ReadConfig() (*Config, error) {
	return ReadConfigFrom(envFile)
}

// ReadConfigFrom - то же, что ReadConfig, но с явным путём к .env файлу
func ReadConfigFrom(path string) (*Config, error) {

	var config Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		// загружаем конфигурацию из файла .env напрямую в структуру
		if err := cleanenvport.LoadPath(path, &config); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &config, nil
}
