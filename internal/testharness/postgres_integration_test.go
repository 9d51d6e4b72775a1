package testharness

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type postgresContainer struct {
	testcontainers.Container
	URL string
}

func setupPostgres(ctx context.Context, t *testing.T) (*postgresContainer, error) {
	natPort := nat.Port("5432/tcp")

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"POSTGRES_USER":     "ewallet",
			"POSTGRES_PASSWORD": "ewallet",
			"POSTGRES_DB":       "ewallet",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var pgC *postgresContainer
	if container != nil {
		pgC = &postgresContainer{Container: container}
	}
	if err != nil {
		return pgC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return pgC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return pgC, err
	}

	pgC.URL = fmt.Sprintf("host=%s port=%s user=ewallet password=ewallet sslmode=disable", host, mappedPort.Port())
	return pgC, nil
}

func TestPostgres_Harness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres integration test")
	}

	ctx := context.Background()
	pgC, err := setupPostgres(ctx, t)
	testcontainers.CleanupContainer(t, pgC)
	require.NoError(t, err)

	admin, err := database.Connect(pgC.URL + " dbname=ewallet")
	require.NoError(t, err)
	require.NoError(t, admin.Exec("CREATE DATABASE ewallet_ledger").Error)

	coreURL := pgC.URL + " dbname=ewallet"
	ledgerURL := pgC.URL + " dbname=ewallet_ledger"

	t.Run("mint and transfer", func(t *testing.T) {
		c := NewWithURLs(t, coreURL, ledgerURL)
		token := c.InsertToken("OMG")
		c.Mint(token, 100)
		c.Transfer(c.AccountWallet().Address, c.PrimaryWallet().Address, token, 50)

		body := c.ProviderRequest("wallet.balances", map[string]any{"address": c.PrimaryWallet().Address})
		assert.Equal(t, true, body["success"])
	})

	t.Run("rolled back", func(t *testing.T) {
		c := NewWithURLs(t, coreURL, ledgerURL)

		var tokens int64
		require.NoError(t, c.DB.Model(&models.Token{}).Count(&tokens).Error)
		assert.Zero(t, tokens)
	})
}
