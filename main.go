package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/IPampurin/LongHandCalculator/pkg/configuration"
	"github.com/IPampurin/LongHandCalculator/pkg/reader"
	"github.com/IPampurin/LongHandCalculator/pkg/renderer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// коды завершения
const (
	exitOK    = 0
	exitUsage = 1
	exitParse = 2
)

// logger - то, что драйверу нужно от логгера
type logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

func main() {

	// считываем конфигурацию, без неё работаем на значениях по умолчанию
	cfg, cfgErr := configuration.ReadConfig()
	if cfgErr != nil {
		cfg = configuration.Default()
	}

	// настраиваем логгер (пишет только в stderr, stdout занят выводом выражений)
	appLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка создания логгера: %v\n", err)
		appLogger = zap.NewNop()
	}

	log := appLogger.Sugar()
	if cfgErr != nil {
		log.Warnw("ошибка загрузки конфигурации, используются значения по умолчанию", "error", cfgErr)
	}

	code := run(os.Args, os.Stdin, os.Stdout, os.Stderr, log)

	// os.Exit не выполняет defer, поэтому сбрасываем буфер логгера явно
	_ = appLogger.Sync()
	os.Exit(code)
}

// newLogger создаёт zap-логгер в production-конфигурации с уровнем из конфига
func newLogger(cfg *configuration.Config) (*zap.Logger, error) {

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("неверный уровень логирования %q: %w", cfg.Log.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.InitialFields = map[string]interface{}{
		"app": cfg.AppName,
		"env": cfg.AppEnv,
	}

	return zapCfg.Build()
}

// run - вся работа программы: чтение всех выражений, затем их печать.
// Возвращает код завершения.
func run(args []string, input io.Reader, out, errOut io.Writer, log logger) int {

	count, ok := parseCount(args)
	if !ok {
		printUsage(out)
		return exitUsage
	}

	// сначала читаем все выражения, первая ошибка прерывает работу
	expressions, err := reader.ReadExpressions(input, count)
	if err != nil {
		log.Errorw("ошибка чтения выражений", "error", err)
		fmt.Fprintf(errOut, "%v\n", err)
		return exitParse
	}
	fmt.Fprintln(out)

	// затем печатаем каждое выражение столбиком
	r := renderer.New(out)
	for _, e := range expressions {
		if err := r.Render(e); err != nil {
			if !renderer.IsRecoverable(err) {
				log.Errorw("ошибка вывода выражения", "error", err)
				fmt.Fprintf(errOut, "%v\n", err)
				return exitParse
			}
			log.Warnw("выражение пропущено", "operator", e.Operator, "error", err)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "finished running.")
	fmt.Fprintf(out, "solved %d expressions\n", count)

	log.Infow("работа завершена", "solved", count)

	return exitOK
}

// parseCount проверяет аргумент с количеством выражений: только целое число больше нуля
func parseCount(args []string) (int, bool) {

	if len(args) < 2 {
		return 0, false
	}

	count, err := strconv.Atoi(args[1])
	if err != nil || count <= 0 {
		return 0, false
	}

	return count, true
}

// printUsage печатает подсказку по запуску
func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: calculator <number_of_expressions>")
	fmt.Fprintln(out, "Example: calculator 3")
	fmt.Fprintln(out, "This script expects a number of expressions to be provided as input.")
	fmt.Fprintln(out, "Each expression should be in the format: <number1><operator><number2>")
	fmt.Fprintln(out, "Operators can be +, - or *.")
}
