package services

import (
	"testing"
	"time"

	"github.com/h4ks-com/ewallet/internal/database"
	"github.com/h4ks-com/ewallet/internal/ledger"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	ledgerDB *gorm.DB
	ledger   *ledger.Ledger

	userRepo       *repository.UserRepository
	accountRepo    *repository.AccountRepository
	roleRepo       *repository.RoleRepository
	walletRepo     *repository.WalletRepository
	tokenRepo      *repository.TokenRepository
	transferRepo   *repository.TransferRepository
	keyRepo        *repository.KeyRepository
	apiKeyRepo     *repository.APIKeyRepository
	authTokenRepo  *repository.AuthTokenRepository
	membershipRepo *repository.MembershipRepository

	users       *UserService
	wallets     *WalletService
	tokens      *TokenService
	memberships *MembershipService
	authTokens  *AuthTokenService
	auth        *AuthService
	mintGate    *MintGate
	txGate      *TransactionGate
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ledgerDB, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateLedger(ledgerDB))

	env := &testEnv{
		db:             db,
		ledgerDB:       ledgerDB,
		ledger:         ledger.New(ledgerDB),
		userRepo:       repository.NewUserRepository(db),
		accountRepo:    repository.NewAccountRepository(db),
		roleRepo:       repository.NewRoleRepository(db),
		walletRepo:     repository.NewWalletRepository(db),
		tokenRepo:      repository.NewTokenRepository(db),
		transferRepo:   repository.NewTransferRepository(db),
		keyRepo:        repository.NewKeyRepository(db),
		apiKeyRepo:     repository.NewAPIKeyRepository(db),
		authTokenRepo:  repository.NewAuthTokenRepository(db),
		membershipRepo: repository.NewMembershipRepository(db),
	}

	env.users = NewUserService(env.userRepo, env.walletRepo, db)
	env.wallets = NewWalletService(env.walletRepo, env.ledger)
	env.tokens = NewTokenService(env.tokenRepo, env.wallets)
	env.memberships = NewMembershipService(env.membershipRepo)
	env.authTokens = NewAuthTokenService(env.authTokenRepo, "test-secret", time.Hour)
	env.auth = NewAuthService(env.keyRepo, env.apiKeyRepo, env.authTokens)
	env.mintGate = NewMintGate(repository.NewMintRepository(db), env.transferRepo, env.tokenRepo, env.wallets, env.ledger, db)
	env.txGate = NewTransactionGate(env.transferRepo, env.walletRepo, env.tokenRepo, env.ledger, db)

	return env
}

func (e *testEnv) createAccount(t *testing.T, name string) *models.Account {
	t.Helper()
	account := &models.Account{Name: name}
	require.NoError(t, e.accountRepo.Create(account))
	return account
}

func (e *testEnv) createToken(t *testing.T, account *models.Account, symbol string) *models.Token {
	t.Helper()
	token, err := e.tokens.Create(account, TokenInput{Symbol: symbol, Name: symbol + " token", SubunitToUnit: 100})
	require.NoError(t, err)
	return token
}

func (e *testEnv) createProviderUser(t *testing.T, providerUserID string) (*models.User, *models.Wallet) {
	t.Helper()
	user, err := e.users.InsertProviderUser(ProviderUserInput{ProviderUserID: providerUserID})
	require.NoError(t, err)
	wallet, err := e.wallets.GetOrCreatePrimaryForUser(user)
	require.NoError(t, err)
	return user, wallet
}
