package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadolammi/resumeclf/internal/recommend"
)

// CategoryAdvice is the response of the per-category lookups. Matched is
// false when the generic fallback was returned.
type CategoryAdvice struct {
	Requested string               `json:"requested"`
	Category  string               `json:"category,omitempty"`
	Matched   bool                 `json:"matched"`
	Jobs      []recommend.JobEntry `json:"jobs,omitempty"`
	Skills    []string             `json:"skills,omitempty"`
	Tips      *recommend.Tips      `json:"tips,omitempty"`
}

// CatalogHandler serves the static recommendation data.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Categories handles GET /api/v1/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"categories": recommend.Categories()})
}

// Jobs handles GET /api/v1/categories/:name/jobs
func (h *CatalogHandler) Jobs(c *gin.Context) {
	advice := newAdvice(c.Param("name"))
	advice.Jobs = recommend.JobsFor(advice.Requested)
	respondSuccess(c, http.StatusOK, advice)
}

// Skills handles GET /api/v1/categories/:name/skills
func (h *CatalogHandler) Skills(c *gin.Context) {
	advice := newAdvice(c.Param("name"))
	advice.Skills = recommend.SkillsFor(advice.Requested)
	respondSuccess(c, http.StatusOK, advice)
}

// Tips handles GET /api/v1/categories/:name/tips
func (h *CatalogHandler) Tips(c *gin.Context) {
	advice := newAdvice(c.Param("name"))
	tips := recommend.TipsFor(advice.Requested)
	advice.Tips = &tips
	respondSuccess(c, http.StatusOK, advice)
}

// Insights handles GET /api/v1/insights
func (h *CatalogHandler) Insights(c *gin.Context) {
	respondSuccess(c, http.StatusOK, recommend.Insights())
}

// Samples handles GET /api/v1/samples
func (h *CatalogHandler) Samples(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"samples": recommend.Samples()})
}

// Sample handles GET /api/v1/samples/:category
func (h *CatalogHandler) Sample(c *gin.Context) {
	s, ok := recommend.SampleFor(c.Param("category"))
	if !ok {
		respondError(c, http.StatusNotFound, CodeNotFound, "no sample resume for this category")
		return
	}
	respondSuccess(c, http.StatusOK, s)
}

func newAdvice(name string) CategoryAdvice {
	key, ok := recommend.MatchCategory(name)
	return CategoryAdvice{Requested: name, Category: key, Matched: ok}
}
