package domain

import "fmt"

// AdminListsKey é a chave do singleton de listas administrativas em app_settings.
const AdminListsKey = "admin_lists"

// AdminLists guarda as opções das listas suspensas editáveis pelo administrador.
// O registro é sempre substituído por inteiro ao salvar.
type AdminLists struct {
	Operadores      []string `json:"operadores"`
	Ruas            []string `json:"ruas"`
	LocaisDeEntrega []string `json:"locaisDeEntrega"`
}

// DefaultAdminLists retorna as listas padrão usadas na primeira leitura.
func DefaultAdminLists() AdminLists {
	ruas := make([]string, 0, 35)
	for i := 1; i <= 32; i++ {
		ruas = append(ruas, fmt.Sprintf("SP - %02d", i))
	}
	ruas = append(ruas, "TENDA", "STEEL", "MEZANINO")

	return AdminLists{
		Operadores: []string{
			"08 - LUIZ", "08 - FABIO", "05 - EDER", "04 - EVERTON", "03 - LUCAS", "03 - RAFAEL", "01 - ALTIERES",
		},
		Ruas:            ruas,
		LocaisDeEntrega: []string{"RAMPA", "TENDA", "KANBAN"},
	}
}

