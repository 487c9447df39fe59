package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/akshatmoradiya03/HealthCare/data"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a local MySQL testcontainer for HealthCare development.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	ctx := context.Background()

	dbImage := getenvDefault("DB_IMAGE", "mysql:8.4")
	rootPassword := getenvDefault("DB_ROOT_PASSWORD", "root")

	tcpDbPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		log.Fatalf("Failed to create DB port: %v\n", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": rootPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start database container: %v\n", err)
	}

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)

	if err := utils.PingService(dbHost, dbPort.Port(), 1500*time.Millisecond); err != nil {
		_ = dbContainer.Terminate(ctx)
		log.Fatalf("Database container unreachable: %v\n", err)
	}

	if err := bootstrapDatabase(dbHost, dbPort.Port(), rootPassword); err != nil {
		_ = dbContainer.Terminate(ctx)
		log.Fatalf("Failed to bootstrap database: %v\n", err)
	}

	log.Printf("MySQL ready. Point the server at it with:")
	log.Printf("  DB_TYPE=mysql DB_HOST=%s DB_PORT=%s DB_DATABASE=healthcare DB_USER=healthcare DB_PASSWORD=healthcare", dbHost, dbPort.Port())

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	if err := dbContainer.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate database container: %v\n", err)
	}
}

// bootstrapDatabase applies the embedded init script as root: creates the
// application database, the app user, and its grants.
func bootstrapDatabase(host, port, rootPassword string) error {
	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, host, port)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range strings.Split(data.InitdbMySQLBootstrap, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

func getenvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
