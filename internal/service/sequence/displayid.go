package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayID é o identificador legível "<mês>.<sequência>" (ex: 10.3).
type DisplayID struct {
	Month    int
	Sequence int
}

func (d DisplayID) String() string {
	return fmt.Sprintf("%d.%d", d.Month, d.Sequence)
}

// Offset retorna o ID n posições à frente no mesmo mês.
func (d DisplayID) Offset(n int) DisplayID {
	return DisplayID{Month: d.Month, Sequence: d.Sequence + n}
}

// ParseDisplayID interpreta "<mês>.<sequência>". Retorna ok=false para qualquer
// valor fora do formato; nunca falha com erro.
func ParseDisplayID(s string) (DisplayID, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return DisplayID{}, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return DisplayID{}, false
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return DisplayID{}, false
	}
	return DisplayID{Month: month, Sequence: seq}, true
}
