package backend

import (
	"errors"
	"fmt"
)

// TransportError - запрос не дошел до сервера или ответ не прочитан
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError - сервер вернул код не из 2xx, Body - текст ответа
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s: request failed: %d %s", e.Op, e.StatusCode, e.Body)
}

// AnalysisError - структурированная ошибка анализа (404/503 с {"error": ...})
type AnalysisError struct {
	StatusCode int
	Message    string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("scar analysis rejected with %d: %s", e.StatusCode, e.Message)
}

// IsTransport сообщает, является ли err сетевой ошибкой
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// AnalysisMessage извлекает сообщение сервера, если оно есть
func AnalysisMessage(err error) (string, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message, true
	}
	return "", false
}
