package migrations

import "embed"

// FS contém as migrações goose de cada dialeto (postgres/ e sqlite/).
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
