// Package migrations embute os arquivos SQL do goose para cada dialeto suportado.
package migrations

import "embed"

// FS contém os diretórios "postgres" e "sqlite".
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
