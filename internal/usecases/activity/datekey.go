// Package activity contém o núcleo puro de classificação de atividade:
// canonicalização de dias, varredura de janelas móveis e reconstrução da
// linha do tempo densa de um perfil a partir do log esparso de eventos.
package activity

import (
	"errors"
	"time"
)

const dateKeyLayout = "2006-01-02"

// ErrEmptyInput indica que o perfil não tem nenhum histórico de atividade.
// O chamador exclui o perfil da agregação; não há retry.
var ErrEmptyInput = errors.New("histórico de atividade vazio")

// ToDateKey trunca o instante para o dia UTC e retorna a chave canônica
// YYYY-MM-DD. Dois instantes no mesmo dia-calendário UTC produzem a mesma
// chave, e a ordem lexicográfica das chaves equivale à ordem cronológica.
func ToDateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// ParseDateKey converte uma chave de dia de volta para meia-noite UTC
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, time.UTC)
}

// FirstAndLastKeys retorna a menor e a maior chave de um mapa esparso por
// dia. Os chamadores só devem inserir chaves produzidas por ToDateKey, caso
// contrário a equivalência lexicográfica/cronológica não vale.
func FirstAndLastKeys(m map[string]int) (first, last string, err error) {
	if len(m) == 0 {
		return "", "", ErrEmptyInput
	}

	for key := range m {
		if first == "" || key < first {
			first = key
		}
		if key > last {
			last = key
		}
	}

	return first, last, nil
}
