// Package data holds the datasets served when no dataset path is configured.
package data

import _ "embed"

//go:embed stocks.csv
var Stocks []byte

//go:embed products.json
var Products []byte

//go:embed tasks.json
var Tasks []byte
