package service

import (
	"context"
	"sync"
	"time"

	"template-vault/internal/cache"
	"template-vault/internal/logging"
	"template-vault/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	newJTI = uuid.NewString
}

// memCache 以 map 模擬 redis 的 GET/SET
func memCache() *cache.FakeCache {
	var mu sync.Mutex
	data := map[string]string{}
	return &cache.FakeCache{
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value.(string)
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
	}
}

type testEnv struct {
	users     *UserService
	templates *TemplateService
	tokens    *TokenService
	userStore *store.MemoryUsers
}

func newTestEnv() *testEnv {
	log := logging.Discard()
	us := store.NewMemoryUsers()
	templates := NewTemplateService(store.NewMemoryTemplates(), log)
	tokens := NewTokenService(testSecret, 0)
	users := NewUserService(
		us,
		templates,
		NewPasswordHasher(bcrypt.MinCost, nil),
		tokens,
		NewRevocations(memCache()),
		log,
	)
	return &testEnv{users: users, templates: templates, tokens: tokens, userStore: us}
}

func signWith(method jwt.SigningMethod, key any, claims jwt.Claims) string {
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		panic(err)
	}
	return s
}
