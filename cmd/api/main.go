package main

import (
	_ "github.com/joho/godotenv/autoload"
)

// @title O Curador de Objetos API
// @version 0.1.0
// @description Catalogs personal items with image-based category and tag suggestions.
// @BasePath /
func main() {
	Execute()
}
