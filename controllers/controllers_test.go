package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hotel-ordering/helpers"
	"go-hotel-ordering/middleware"
	"go-hotel-ordering/models"
	"go-hotel-ordering/session"
	"go-hotel-ordering/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/go-playground/assert.v1"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }

func TestFilterMenu(t *testing.T) {
	menu := store.SampleMenu()
	tests := []struct {
		name     string
		category string
		query    string
		want     int
	}{
		{name: "everything", want: 6},
		{name: "all category", category: "All", want: 6},
		{name: "category", category: "Starter", want: 1},
		{name: "category is exact", category: "starter", want: 0},
		{name: "query matches description", query: "rice", want: 2},
		{name: "query ignores case", query: "MASALA", want: 2},
		{name: "both", category: "Main Course", query: "masala", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, len(filterMenu(menu, tt.category, tt.query)), tt.want)
		})
	}
}

func TestTrimPatch(t *testing.T) {
	patch := models.MenuItemPatch{Name: strPtr("  Lassi "), Category: strPtr(" Drinks")}
	assert.Equal(t, trimPatch(&patch), "")
	assert.Equal(t, *patch.Name, "Lassi")
	assert.Equal(t, *patch.Category, "Drinks")

	blank := models.MenuItemPatch{Name: strPtr("Lassi"), Image: strPtr("   ")}
	assert.Equal(t, trimPatch(&blank), "image")
}

func TestValidationMessageUsesJSONNames(t *testing.T) {
	price := decimal.NewFromInt(-5)
	err := validate.Struct(&models.MenuItemPatch{Price: &price})
	assert.NotEqual(t, err, nil)
	assert.Equal(t, strings.HasPrefix(validationMessage(err), "price: must satisfy gte=0"), true)

	err = validate.Struct(&models.UpdateOrderStatusRequest{Status: "served"})
	assert.NotEqual(t, err, nil)
	assert.Equal(t, strings.HasPrefix(validationMessage(err), "status:"), true)

	err = validate.Struct(&models.UpdateOrderStatusRequest{Status: models.OrderStatusCancelled})
	assert.Equal(t, err, nil)
}

func TestAdminActionsLogTheRole(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	registry := session.NewRegistry(time.Hour, func(string) *store.OrderStore {
		return store.New(store.WithMenu(store.SampleMenu()))
	}, nil)
	id, _, _ := registry.Resolve("")
	auth, err := helpers.NewAdminAuth("admin123", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, _, err := auth.GenerateAdminToken(id, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	router := gin.New()
	router.Use(middleware.Session(registry))
	router.DELETE("/admin/menu/:menu_item_id", middleware.Authentication(auth), DeleteMenuItem(logger))

	req := httptest.NewRequest(http.MethodDelete, "/admin/menu/1", nil)
	req.Header.Set(middleware.SessionHeader, id)
	req.Header.Set("token", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, w.Code, http.StatusNoContent)

	entries := logs.FilterMessage("menu item deleted").All()
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].ContextMap()["role"], helpers.RoleAdmin)
}
