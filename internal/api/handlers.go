package api

import (
	"errors"
	"net/http"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"github.com/Rhaast00/vervappweb/internal/service/ai"
	"github.com/Rhaast00/vervappweb/internal/service/analyzer"
	"github.com/Rhaast00/vervappweb/internal/service/credentials"
	"github.com/Rhaast00/vervappweb/internal/service/database"
	"github.com/Rhaast00/vervappweb/internal/service/redesigner"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userHeader = "X-User-ID"

// Handlers holds the API surface dependencies.
type Handlers struct {
	analyzer    *analyzer.Service
	redesigner  *redesigner.Service
	credentials credentials.Store
	registry    *ai.Registry
	records     *database.RecordRepository
	defaultUser string
	defaultProv string
	logger      *zap.Logger
}

func NewHandlers(
	analyzerSvc *analyzer.Service,
	redesignerSvc *redesigner.Service,
	credStore credentials.Store,
	registry *ai.Registry,
	records *database.RecordRepository,
	defaultUser, defaultProvider string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		analyzer:    analyzerSvc,
		redesigner:  redesignerSvc,
		credentials: credStore,
		registry:    registry,
		records:     records,
		defaultUser: defaultUser,
		defaultProv: defaultProvider,
		logger:      logger,
	}
}

// userID resolves the acting user from the request header, defaulting for
// single-user deployments.
func (h *Handlers) userID(c *gin.Context) string {
	if user := c.GetHeader(userHeader); user != "" {
		return user
	}
	return h.defaultUser
}

func (h *Handlers) provider(requested string) string {
	if requested == "" {
		return h.defaultProv
	}
	return requested
}

type analyzeRequest struct {
	URL      string `json:"url" binding:"required"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Analyze runs a website design analysis.
func (h *Handlers) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	provider := h.provider(req.Provider)
	if !domain.ValidProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider", "provider": provider})
		return
	}
	if !ai.ValidModel(provider, req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown model for provider", "model": req.Model})
		return
	}

	data, err := h.analyzer.Analyze(c.Request.Context(), h.userID(c), req.URL, provider, req.Model)
	if err != nil {
		if perrors.IsCredentialMissing(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "no API key stored for provider",
				"code":     perrors.CodeCredentialMissing,
				"provider": provider,
			})
			return
		}
		h.logger.Error("Analyze request failed", zap.String("url", req.URL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, data)
}

type redesignRequest struct {
	WebsiteData domain.WebsiteData `json:"websiteData" binding:"required"`
	DesignStyle string             `json:"designStyle" binding:"required"`
	Provider    string             `json:"provider"`
	Model       string             `json:"model"`
}

// Redesign generates a styled redesign from analysis data.
func (h *Handlers) Redesign(c *gin.Context) {
	var req redesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websiteData and designStyle are required"})
		return
	}

	style, ok := domain.ParseStyle(req.DesignStyle)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown design style", "designStyle": req.DesignStyle})
		return
	}

	provider := h.provider(req.Provider)
	if !domain.ValidProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider", "provider": provider})
		return
	}
	if !ai.ValidModel(provider, req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown model for provider", "model": req.Model})
		return
	}

	result := h.redesigner.Redesign(c.Request.Context(), h.userID(c), &domain.RedesignRequest{
		WebsiteData: req.WebsiteData,
		DesignStyle: style,
	}, provider, req.Model)

	c.JSON(http.StatusOK, result)
}

// Providers lists supported providers and their model catalogues.
func (h *Handlers) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": domain.AllProviders(),
		"models":    ai.Catalogues(),
		"styles":    domain.AllStyles(),
	})
}

type saveKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// SaveKey stores a provider API key for the user and invalidates any cached
// client so the next request picks up the new credential.
func (h *Handlers) SaveKey(c *gin.Context) {
	provider := c.Param("provider")
	if !domain.ValidProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider", "provider": provider})
		return
	}

	var req saveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "apiKey is required"})
		return
	}

	user := h.userID(c)
	if err := h.credentials.Save(c.Request.Context(), user, provider, req.APIKey); err != nil {
		h.logger.Error("Key save failed", zap.String("provider", provider), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save key"})
		return
	}

	h.registry.ClearProvider(user, provider)
	c.JSON(http.StatusOK, gin.H{"status": "saved", "provider": provider})
}

// DeleteKey removes a stored provider API key.
func (h *Handlers) DeleteKey(c *gin.Context) {
	provider := c.Param("provider")
	if !domain.ValidProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown provider", "provider": provider})
		return
	}

	user := h.userID(c)
	if err := h.credentials.Delete(c.Request.Context(), user, provider); err != nil {
		h.logger.Error("Key delete failed", zap.String("provider", provider), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete key"})
		return
	}

	h.registry.ClearProvider(user, provider)
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "provider": provider})
}

// ListAnalyses returns the user's stored analyses.
func (h *Handlers) ListAnalyses(c *gin.Context) {
	records, err := h.records.ListAnalyses(c.Request.Context(), h.userID(c), 0)
	if err != nil {
		h.logger.Error("List analyses failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list analyses"})
		return
	}
	if records == nil {
		records = []database.AnalysisRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"analyses": records})
}

// GetAnalysis returns one stored analysis.
func (h *Handlers) GetAnalysis(c *gin.Context) {
	record, err := h.records.GetAnalysis(c.Request.Context(), h.userID(c), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	if err != nil {
		h.logger.Error("Get analysis failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analysis"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListRedesigns returns the redesigns generated from one analysis.
func (h *Handlers) ListRedesigns(c *gin.Context) {
	records, err := h.records.ListRedesignsForAnalysis(c.Request.Context(), h.userID(c), c.Param("id"))
	if err != nil {
		h.logger.Error("List redesigns failed", zap.String("analysis_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list redesigns"})
		return
	}
	if records == nil {
		records = []database.RedesignRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"redesigns": records})
}

// GetRedesign returns one stored redesign.
func (h *Handlers) GetRedesign(c *gin.Context) {
	record, err := h.records.GetRedesign(c.Request.Context(), h.userID(c), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "redesign not found"})
		return
	}
	if err != nil {
		h.logger.Error("Get redesign failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load redesign"})
		return
	}
	c.JSON(http.StatusOK, record)
}
