package handler

import (
	"Scoops/config"
	"Scoops/middleware"
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/response"
	"Scoops/service"
	"Scoops/types"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/products")
	g.GET("", context.Wrap(p.List))
	g.GET("/paged", context.Wrap(p.ListPaged))
	g.GET("/:id", context.Wrap(p.Get))
	g.POST("", authorize, admin, context.Wrap(p.Create))
	g.PUT("/:id", authorize, admin, context.Wrap(p.Update))
	g.DELETE("/:id", authorize, admin, context.Wrap(p.Delete))
}

func (p *Product) Create(c *gin.Context) error {
	var form types.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		return badRequest(err)
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "invalid price")
	}

	var image *multipart.FileHeader
	image, err = c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return badRequest(err)
	}

	product, err := p.ProductService.Create(c.Request.Context(), &types.CreateProductInput{
		Name:          form.Name,
		Description:   form.Description,
		Price:         price,
		Category:      form.Category,
		StockQuantity: form.StockQuantity,
	}, image)
	if err != nil {
		return err
	}
	c.Header("Location", c.FullPath()+"/"+strconv.FormatInt(product.ID, 10))
	response.Created(c, product)
	return nil
}

func (p *Product) List(c *gin.Context) error {
	products, err := p.ProductService.ListActive(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, products)
	return nil
}

func (p *Product) ListPaged(c *gin.Context) error {
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return badRequest(err)
	}
	page, size := 0, 10
	if q.Page != nil {
		page = *q.Page
	}
	if q.Size != nil {
		size = *q.Size
	}
	products, err := p.ProductService.ListPaged(c.Request.Context(), page, size)
	if err != nil {
		return err
	}
	response.Success(c, products)
	return nil
}

func (p *Product) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := p.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (p *Product) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.UpdateProductRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		return badRequest(err)
	}
	product, err := p.ProductService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (p *Product) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err = p.ProductService.Deactivate(c.Request.Context(), id); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
