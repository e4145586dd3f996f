package main

import (
	"log"
	"os"

	"github.com/hugohenrick/banking-org/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao executar migrações: %v", err)
		}
		log.Println("Migrações executadas com sucesso!")
	case "down":
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Migração desfeita com sucesso!")
	default:
		log.Fatalf("Comando desconhecido: %s (use 'up' ou 'down')", command)
	}
}
