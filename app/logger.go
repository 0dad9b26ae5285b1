package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger interface {
	Error(format string, v ...any)
	Warning(format string, v ...any)
	Info(format string, v ...any)
}

type StdLog struct {
	err, wrn, inf *log.Logger
}

// NewLogger writes errors and warnings to stderr and info to stdout.
func NewLogger() *StdLog {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

func NewLoggerTo(out, errOut io.Writer) *StdLog {
	return &StdLog{
		err: log.New(errOut, "ERROR ", log.LstdFlags),
		wrn: log.New(errOut, "WARN ", log.LstdFlags),
		inf: log.New(out, "INFO ", log.LstdFlags),
	}
}

func (l *StdLog) Error(format string, v ...any) {
	_ = l.err.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Warning(format string, v ...any) {
	_ = l.wrn.Output(2, fmt.Sprintf(format, v...))
}

func (l *StdLog) Info(format string, v ...any) {
	_ = l.inf.Output(2, fmt.Sprintf(format, v...))
}

type EmptyLog struct{}

func (EmptyLog) Error(string, ...any)   {}
func (EmptyLog) Warning(string, ...any) {}
func (EmptyLog) Info(string, ...any)    {}
