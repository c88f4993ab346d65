// Package logger is a minimal leveled logger shared by the engine and its
// tooling. Output goes to stdout; the level gates what is printed.
package logger

import (
	"fmt"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"
)

var level = LevelInfo

func GetLevel() string {
	return level
}

func SetLevel(lvl string) {
	if lvl == "" {
		lvl = LevelInfo
	}
	level = lvl
	Debugf("Set logger level to %v\n", level)
}

func Debug(args ...interface{}) {
	if level == LevelDebug {
		fmt.Println(args...)
	}
}

func Info(args ...interface{}) {
	if level != LevelError {
		fmt.Println(args...)
	}
}

func Error(args ...interface{}) {
	fmt.Println(args...)
}

func Debugf(template string, args ...interface{}) {
	if level == LevelDebug {
		fmt.Printf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if level != LevelError {
		fmt.Printf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	fmt.Printf(template, args...)
}
