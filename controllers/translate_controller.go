// controllers/translate_controller.go
package controllers

import (
	"net/http"

	"touristtable/pkg/resp"
	"touristtable/services"

	"github.com/gin-gonic/gin"
)

type TranslateController struct {
	Translator *services.TranslateService
}

func NewTranslateController(translator *services.TranslateService) *TranslateController {
	return &TranslateController{Translator: translator}
}

// ===== DTO =====

type TranslateMenuRequest struct {
	Items      []map[string]any `json:"items"`
	TargetLang string           `json:"target_lang"`
}

// ===== Handlers =====

// POST /translate_menu
func (tc *TranslateController) TranslateMenu(c *gin.Context) {
	var req TranslateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.TargetLang == "" {
		req.TargetLang = "en"
	}

	items, lang := tc.Translator.TranslateItems(req.Items, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"items": items, "lang": lang})
}
