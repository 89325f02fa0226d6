// Package uuidgen генерация глобально-уникальных идентификаторов
package uuidgen

import "github.com/google/uuid"

// Generator генератор идентификаторов на основе UUID v4
type Generator struct{}

// New создает новый генератор
func New() *Generator {
	return &Generator{}
}

// NewID возвращает новый глобально-уникальный идентификатор
func (g *Generator) NewID() string {
	return uuid.NewString()
}
