package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// MustOpenAPIValidator creates the request validator middleware and panics
// on setup failure.
func MustOpenAPIValidator(doc *openapi3.T, basePath string) gin.HandlerFunc {
	mw, err := NewOpenAPIValidator(doc, basePath)
	if err != nil {
		panic(fmt.Sprintf("init openapi validator: %v", err))
	}
	return mw
}

// NewOpenAPIValidator validates incoming requests against the OpenAPI
// contract. Requests outside the contract pass through untouched; requests
// that match a path but fail validation are rejected with a 400 before any
// handler runs. Authentication is left to the JWT and cron middleware.
func NewOpenAPIValidator(doc *openapi3.T, basePath string) (gin.HandlerFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("create openapi router: %w", err)
	}

	basePath = strings.TrimSpace(basePath)
	if basePath != "" && basePath != "/" {
		basePath = "/" + strings.Trim(basePath, "/")
	} else {
		basePath = ""
	}

	opts := &openapi3filter.Options{
		AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
			return nil
		},
	}

	return func(c *gin.Context) {
		route, pathParams, routeErr := findRoute(router, c.Request, basePath)
		if routeErr != nil {
			if isPathNotFound(routeErr) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "OPENAPI_ROUTE_INVALID",
				"message": routeErr.Error(),
			})
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    opts,
		}
		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "OPENAPI_REQUEST_INVALID",
				"message": err.Error(),
			})
			return
		}

		c.Next()
	}, nil
}

// findRoute matches the request as-is first, then with the base path
// stripped. Both spellings occur depending on whether the document's
// servers entry already carries the prefix.
func findRoute(router routers.Router, req *http.Request, basePath string) (*routers.Route, map[string]string, error) {
	origPath := req.URL.Path

	candidates := []string{origPath}
	if basePath != "" && strings.HasPrefix(origPath, basePath+"/") {
		candidates = append(candidates, strings.TrimPrefix(origPath, basePath))
	}

	var lastErr error
	for _, candidate := range candidates {
		req.URL.Path = candidate
		route, pathParams, err := router.FindRoute(req)
		if err == nil {
			req.URL.Path = origPath
			return route, pathParams, nil
		}
		if !isPathNotFound(err) {
			req.URL.Path = origPath
			return nil, nil, err
		}
		lastErr = err
	}

	req.URL.Path = origPath
	return nil, nil, lastErr
}

func isPathNotFound(err error) bool {
	if err == nil {
		return false
	}
	if err == routers.ErrPathNotFound {
		return true
	}
	return strings.Contains(err.Error(), routers.ErrPathNotFound.Error())
}
