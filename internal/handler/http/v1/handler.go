package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/service"
)

type Handler struct {
	floodService service.FloodRiskService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(floodService service.FloodRiskService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		floodService: floodService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Predict flood risk
// @Description Resolve the district mentioned in the location text and score its flood risk from current and forecast rainfall.
// @Tags Flood
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Location to assess"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var input PredictRequest
	log := h.logger.WithField("method", "predict")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assessment := h.floodService.PredictFloodRisk(c.Request.Context(), input.Location, input.Lat, input.Lon)
	c.JSON(http.StatusOK, ModelToPredictResponse(assessment))
}

// @Summary List districts
// @Description List the district directory in lookup order. Requires API key when API_KEYS is set.
// @Tags Flood
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} DistrictResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /districts [get]
func (h *Handler) listDistricts(c *gin.Context) {
	districts := h.floodService.ListDistricts(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToDistrictResponses(districts))
}

// @Summary Health check
// @Description Check if the service is running.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
