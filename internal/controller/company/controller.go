// Package company provides HTTP handlers for the company directory.
package company

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/utilities"
)

// Store reads the company directory.
type Store interface {
	All(ctx context.Context) ([]model.Company, error)
}

type CompanyController struct {
	Companies Store
}

func NewCompanyController(companies Store) *CompanyController {
	return &CompanyController{
		Companies: companies,
	}
}

// GetCompanies returns the whole company directory.
// @Summary List companies
// @Tags Company
// @Produce json
// @Success 200 {array} model.Company "Companies"
// @Failure 503 {object} utilities.ErrorResponse "Store unavailable"
// @Router /companies [get]
func (cc *CompanyController) GetCompanies(c *gin.Context) {
	companies, err := cc.Companies.All(c.Request.Context())
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}
