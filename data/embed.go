package data

import (
	_ "embed"
)

//go:embed initdb/mysql/001-init.sql
var InitdbMySQLBootstrap string
