package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/vfg2006/loan-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/loan-ledger-api/infrastructure/migration"
	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Script de preparação do banco: aplica as migrações e garante a conta de
// administrador inicial.

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de preparação do banco...")
}

func seedAdmin(ctx context.Context, users repository.UserRepository, name, email, password string) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		log.Fatalf("ERRO ao consultar administrador: %v", err)
	}
	if existing != nil {
		log.Printf("Administrador %s já existe (id %d), nada a fazer", email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash da senha: %v", err)
	}

	admin, err := users.CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("ERRO ao criar administrador: %v", err)
	}

	log.Printf("Administrador %s criado com id %d", email, admin.ID)
}

func main() {
	setupLogger()

	name := flag.String("name", "Administrador", "nome do administrador")
	email := flag.String("email", "", "e-mail do administrador")
	password := flag.String("password", "", "senha inicial do administrador")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	if err := migration.Up(conn.DB); err != nil {
		log.Fatalf("ERRO ao aplicar migrações: %v", err)
	}
	log.Printf("Migrações aplicadas em %v", time.Since(startTime))

	if *email == "" || *password == "" {
		log.Println("Sem -email/-password, administrador não será criado")
		return
	}

	seedAdmin(ctx, repository.NewUserRepository(conn), *name, *email, *password)
}
