package handlers

//go:generate mockery --name=ProductService -r --case underscore --with-expecter --structname ProductService --filename product_service.go --output=./mocks
import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/screener/core/product"
	"github.com/goto/screener/core/query"
)

type ProductService interface {
	List(ctx context.Context, flt product.Filter) (query.ResultPage[product.Product], error)
	Get(ctx context.Context, id string) (product.Product, error)
}

type ProductHandler struct {
	logger  log.Logger
	service ProductService
}

func NewProductHandler(logger log.Logger, service ProductService) *ProductHandler {
	return &ProductHandler{logger: logger, service: service}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	flt, err := product.FilterFromParams(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, "error parsing product filter", err)
		return
	}

	page, err := h.service.List(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error listing products", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Get accepts either the product UUID or its SKU.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, "error getting product", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
