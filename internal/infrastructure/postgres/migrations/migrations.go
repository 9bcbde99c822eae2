package migrations

import "embed"

// Migrations contiene los archivos SQL de goose embebidos en el binario.
//
//go:embed *.sql
var Migrations embed.FS
