package controllers

import (
	"net/http"
	"strings"

	"go-hotel-ordering/middleware"
	"go-hotel-ordering/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const allCategories = "All"

// GetMenuItems lists the catalog. ?category= keeps one category ("All" or
// empty keeps every one); ?q= matches name or description, ignoring case.
func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		items := filterMenu(middleware.SessionStore(c).MenuItems(), c.Query("category"), c.Query("q"))
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu items fetched successfully",
			"data":    items,
		})
	}
}

func GetMenuCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := middleware.SessionStore(c).Categories()
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Menu categories fetched successfully",
			"data":    categories,
		})
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := middleware.SessionStore(c).MenuItem(c.Param("menu_item_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.Name = strings.TrimSpace(item.Name)
		item.Description = strings.TrimSpace(item.Description)
		item.Category = strings.TrimSpace(item.Category)
		item.Image = strings.TrimSpace(item.Image)
		if err := validate.Struct(&item); err != nil {
			logger.Debug("menu item rejected", zap.String("reason", validationMessage(err)))
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		created := middleware.SessionStore(c).AddMenuItem(item)
		logger.Info("menu item created",
			zap.String("role", middleware.Role(c)),
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("menu_item_id", created.ID),
			zap.String("name", created.Name))
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateMenuItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.MenuItemPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if field := trimPatch(&patch); field != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": field + ": must not be empty"})
			return
		}
		if err := validate.Struct(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}

		menuItemID := c.Param("menu_item_id")
		updated, ok := middleware.SessionStore(c).UpdateMenuItem(menuItemID, patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		logger.Info("menu item updated",
			zap.String("role", middleware.Role(c)),
			zap.String("session_id", middleware.SessionID(c)),
			zap.String("menu_item_id", menuItemID))
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteMenuItem answers 204 whether or not the item existed. Cart lines and
// orders pointing at it are left alone.
func DeleteMenuItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		menuItemID := c.Param("menu_item_id")
		if middleware.SessionStore(c).DeleteMenuItem(menuItemID) {
			logger.Info("menu item deleted",
				zap.String("role", middleware.Role(c)),
				zap.String("session_id", middleware.SessionID(c)),
				zap.String("menu_item_id", menuItemID))
		}
		c.Status(http.StatusNoContent)
	}
}

func filterMenu(items []models.MenuItem, category, query string) []models.MenuItem {
	category = strings.TrimSpace(category)
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && category != allCategories && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// trimPatch trims the provided text fields and returns the json name of the
// first one left empty.
func trimPatch(p *models.MenuItemPatch) string {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", p.Name},
		{"description", p.Description},
		{"category", p.Category},
		{"image", p.Image},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return f.name
		}
	}
	return ""
}
