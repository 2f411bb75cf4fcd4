package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/repo"
	"github.com/feirinha/feirinha/services/basket/internal/valuation"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Basket{}, &models.BasketItem{}))
	return &repo.GormRepo{DB: db}
}

// itemsStub fakes the items service: known produto ids answer 200 with
// the usual payload, unknown ids answer 404. calls counts every lookup.
type itemsStub struct {
	srv   *httptest.Server
	calls atomic.Int32
}

func newItemsStub(t *testing.T, precos map[int]string) *itemsStub {
	stub := &itemsStub{}
	stub.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)

		id, err := strconv.Atoi(strings.Trim(r.URL.Path, "/"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}

		preco, ok := precos[id]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id": %d, "nome": "Produto %d", "preco": "%s"}`, id, id, preco)
	}))
	t.Cleanup(stub.srv.Close)
	return stub
}

func (s *itemsStub) valuator() *valuation.Valuator {
	return &valuation.Valuator{Fetcher: valuation.NewClient(s.srv.URL)}
}

func (s *itemsStub) aggregator() *valuation.Aggregator {
	return &valuation.Aggregator{Valuator: s.valuator()}
}

func mustCreateBasket(t *testing.T, r *repo.GormRepo, nome, estabelecimento string) *models.Basket {
	basket := &models.Basket{Nome: nome, Estabelecimento: estabelecimento}
	require.NoError(t, r.DB.Create(basket).Error)
	return basket
}

func mustCreateItem(t *testing.T, r *repo.GormRepo, basketID uint, produtoID int, quantidade uint) *models.BasketItem {
	item := &models.BasketItem{BasketID: basketID, ProdutoID: produtoID, Quantidade: quantidade}
	require.NoError(t, r.DB.Create(item).Error)
	return item
}
