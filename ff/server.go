package ff

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"os"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/ankurkotwal/fitfont/ff/common"
	"github.com/ankurkotwal/fitfont/fitfont"
)

// FitRequest asks for the directives for a container
type FitRequest struct {
	Width  float64 `json:"width" binding:"min=0"`
	Height float64 `json:"height" binding:"min=0"`
	common.FitOptions
}

// RenderRequest asks for text fitted into an image of the given size
type RenderRequest struct {
	Width            float64 `json:"width" binding:"gt=0,lte=8192"`
	Height           float64 `json:"height" binding:"gt=0,lte=8192"`
	Text             string  `json:"text" binding:"required"`
	Format           string  `json:"format"`
	TextColour       string  `json:"textColour"`
	BackgroundColour string  `json:"backgroundColour"`
	common.FitOptions
}

// GetServer returns the router and the address to run it on
func GetServer(debugMode bool, config *common.Config) (*gin.Engine, string) {
	book, err := common.NewFontBook(config)
	if err != nil {
		log.Fatal(err)
	}

	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	if debugMode {
		pprof.Register(router)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":     config.AppName,
			"version": config.Version,
		})
	})

	api := router.Group("/api")
	api.POST("/fit", handleFit)
	api.POST("/render", func(c *gin.Context) {
		handleRender(c, book, config)
	})
	api.POST("/card", func(c *gin.Context) {
		handleCard(c, book, config)
	})

	// Run on port 8080 unless PORT variable specified
	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "8080"
	}
	return router, fmt.Sprintf(":%s", port)
}

func handleFit(c *gin.Context) {
	var req FitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	cfg, err := req.FitConfig()
	if err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, fitfont.Calculate(fitfont.Size{Width: req.Width,
		Height: req.Height}, cfg))
}

func handleRender(c *gin.Context, book *common.FontBook, config *common.Config) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	card := &common.Card{
		Width:      int(math.Ceil(req.Width)),
		Height:     int(math.Ceil(req.Height)),
		Background: req.BackgroundColour,
		Format:     req.Format,
		Boxes: []common.Box{{
			Text:       req.Text,
			Frame:      common.Rect{W: req.Width, H: req.Height},
			TextColour: req.TextColour,
			FitOptions: req.FitOptions,
		}},
	}
	if err := card.Prepare(config); err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	sendCard(c, card, book, config)
}

func handleCard(c *gin.Context, book *common.FontBook, config *common.Config) {
	data, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	card, err := common.ParseCard(data, config)
	if err != nil {
		sendError(c, http.StatusBadRequest, err)
		return
	}
	sendCard(c, card, book, config)
}

func sendCard(c *gin.Context, card *common.Card, book *common.FontBook,
	config *common.Config) {
	log := common.NewLog()
	imgBytes, results, err := common.RenderCard(card, book, config, log)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err)
		return
	}
	if len(results) == 1 {
		c.Header("X-Fit-Font-Size", fmt.Sprintf("%.2f", results[0].Layout.FontSize))
	}
	c.Data(http.StatusOK, common.ContentType(card.Format), imgBytes.Bytes())
}

func sendError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
