package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/farm2home/farm2home-backend/pkg/response"
	"github.com/farm2home/farm2home-backend/pkg/validation"
)

// DefaultFilterDelay is the artificial latency of the simulated image
// filter. No real processing happens; the delay stands in for it.
const DefaultFilterDelay = 500 * time.Millisecond

// FunctionHandler serves the stateless callable endpoints: greeting,
// arithmetic, server time and the simulated image filter.
type FunctionHandler struct {
	Logger      *logrus.Logger
	FilterDelay time.Duration
}

func NewFunctionHandler(logger *logrus.Logger) *FunctionHandler {
	return &FunctionHandler{Logger: logger, FilterDelay: DefaultFilterDelay}
}

type sayHelloRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *FunctionHandler) SayHello(c *gin.Context) {
	var req sayHelloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "name parameter is required and must be a string", validation.ToDetails(err))
		return
	}

	h.Logger.WithField("name", req.Name).Info("sayHello called")

	message := fmt.Sprintf("Hello, %s! Welcome to Farm2Home.", req.Name)
	response.Success(c, http.StatusOK, gin.H{
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}, "greeting")
}

type calculateSumRequest struct {
	A *float64 `json:"a" binding:"required"`
	B *float64 `json:"b" binding:"required"`
}

func (h *FunctionHandler) CalculateSum(c *gin.Context) {
	var req calculateSumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "both a and b must be numbers", validation.ToDetails(err))
		return
	}

	h.Logger.WithFields(logrus.Fields{"a": *req.A, "b": *req.B}).Info("calculateSum called")

	sum := *req.A + *req.B
	response.Success(c, http.StatusOK, gin.H{
		"a":         *req.A,
		"b":         *req.B,
		"sum":       sum,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}, "sum calculated")
}

func (h *FunctionHandler) GetServerTime(c *gin.Context) {
	h.Logger.Info("getServerTime called")

	now := time.Now().UTC()
	response.Success(c, http.StatusOK, gin.H{
		"timestamp": now.Format(time.RFC3339Nano),
		"unixTime":  now.Unix(),
	}, "server time")
}

type processImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Filter   string `json:"filter" binding:"required,oneof=blur grayscale enhance sharpen"`
}

// ProcessImage is a stub: it validates, waits the simulated latency and
// returns the original URL annotated with filter markers. Nothing is
// downloaded, transformed or uploaded.
func (h *FunctionHandler) ProcessImage(c *gin.Context) {
	var req processImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "imageUrl and filter are required; filter must be one of: blur, grayscale, enhance, sharpen", validation.ToDetails(err))
		return
	}

	h.Logger.WithFields(logrus.Fields{"image_url": req.ImageURL, "filter": req.Filter}).Info("processImage called")

	start := time.Now()
	time.Sleep(h.FilterDelay)
	processingTime := time.Since(start).Milliseconds()

	processedURL := fmt.Sprintf("%s?filter=%s&processed=true", req.ImageURL, req.Filter)
	response.Success(c, http.StatusOK, gin.H{
		"processedImageUrl": processedURL,
		"filter":            req.Filter,
		"processingTime":    processingTime,
		"timestamp":         time.Now().UTC().Format(time.RFC3339Nano),
	}, "image processed")
}
