package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// NewQuietLogger returns a Logger that accepts any call.
func NewQuietLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	m := NewLogger(t)
	for _, method := range []string{"Debugf", "Infof", "Warnf"} {
		for n := 0; n <= 6; n++ {
			m.On(method, anyArgs(2+n)...).Maybe().Return()
		}
	}
	for n := 0; n <= 6; n++ {
		m.On("Errorf", anyArgs(3+n)...).Maybe().Return()
	}
	m.On("WithFields", mock.Anything).Maybe().Return(m)
	return m
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}
