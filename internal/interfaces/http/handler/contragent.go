package handler

import (
	"github.com/gin-gonic/gin"

	contragentapp "github.com/documentflow/backend/internal/application/contragent"
	"github.com/documentflow/backend/internal/domain/contragent"
)

// ContragentHandler serves the counterparty API: free-text search,
// creation of persons and companies, the three registries, and the
// link operations (bind, update, soft-delete).
type ContragentHandler struct {
	BaseHandler
	contragentService   *contragentapp.ContragentService
	personService       *contragentapp.PersonService
	organizationService *contragentapp.OrganizationService
	addressService      *contragentapp.AddressService
}

// NewContragentHandler creates a new ContragentHandler
func NewContragentHandler(
	contragentService *contragentapp.ContragentService,
	personService *contragentapp.PersonService,
	organizationService *contragentapp.OrganizationService,
	addressService *contragentapp.AddressService,
) *ContragentHandler {
	return &ContragentHandler{
		contragentService:   contragentService,
		personService:       personService,
		organizationService: organizationService,
		addressService:      addressService,
	}
}

// RegisterRoutes registers the counterparty routes
func (h *ContragentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/contragents")

	g.GET("", h.Search)
	g.POST("", h.Save)

	g.GET("/persons", h.SearchPersons)
	g.PUT("/persons", h.UpdatePerson)
	g.DELETE("/persons/:id", h.DeletePerson)
	g.GET("/persons/:id/addresses", h.GetPersonAddresses)
	g.POST("/persons/:id/addresses", h.BindAddressWithPerson)
	g.DELETE("/persons/addresses/:id", h.DeleteLink)

	g.GET("/addresses", h.SearchAddresses)
	g.PUT("/addresses", h.UpdateAddress)
	g.DELETE("/addresses/:id", h.DeleteAddress)

	g.GET("/companies", h.SearchCompanies)
	g.PUT("/companies", h.UpdateCompany)
	g.DELETE("/companies/:id", h.DeleteCompany)
	g.GET("/companies/:id/addresses", h.GetCompanyAddresses)
	g.POST("/companies/:id/addresses", h.BindAddressWithCompany)
	g.GET("/companies/:id/employees", h.GetCompanyEmployees)
	g.POST("/companies/:id/employees", h.BindEmployee)
	g.POST("/companies/:id/employees/address", h.BindEmployeeWithAddress)
	g.DELETE("/companies/addresses/:id", h.DeleteLink)
	g.DELETE("/companies/employees/:id", h.DeleteLink)

	g.GET("/employees", h.SearchEmployees)
	g.PUT("/employees", h.UpdateEmployee)
	g.DELETE("/employees/:id", h.DeleteLink)
}

// Search finds active links by search name substring
func (h *ContragentHandler) Search(c *gin.Context) {
	responses, err := h.contragentService.Search(c.Request.Context(), c.Query("search_name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// Save creates a person or company counterparty with nested addresses
// and employees
func (h *ContragentHandler) Save(c *gin.Context) {
	var req contragentapp.SaveContragentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.contragentService.Save(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, nil)
}

// SearchPersons searches the person registry by name fields
func (h *ContragentHandler) SearchPersons(c *gin.Context) {
	query := contragent.PersonQuery{
		FirstName:  c.Query("first_name"),
		MiddleName: c.Query("middle_name"),
		LastName:   c.Query("last_name"),
	}

	responses, err := h.personService.FindAll(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// UpdatePerson renames a person and rewrites dependent search names
func (h *ContragentHandler) UpdatePerson(c *gin.Context) {
	var req contragentapp.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.personService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePerson soft-deletes every link of a person
func (h *ContragentHandler) DeletePerson(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.personService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetPersonAddresses lists the active addresses of a person. Each
// returned address carries the link id, which DeleteLink accepts.
func (h *ContragentHandler) GetPersonAddresses(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	responses, err := h.personService.GetAddresses(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// BindAddressWithPerson links a new or existing address to a person
func (h *ContragentHandler) BindAddressWithPerson(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	var req contragentapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contragentService.BindAddressWithPerson(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SearchAddresses searches the address registry
func (h *ContragentHandler) SearchAddresses(c *gin.Context) {
	query := contragent.AddressQuery{
		PostalIndex:     c.Query("postal_index"),
		Country:         c.Query("country"),
		City:            c.Query("city"),
		Street:          c.Query("street"),
		HouseNumber:     c.Query("house_number"),
		ApartmentNumber: c.Query("apartment_number"),
	}

	responses, err := h.addressService.FindAll(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// UpdateAddress rewrites an address row in place
func (h *ContragentHandler) UpdateAddress(c *gin.Context) {
	var req contragentapp.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.addressService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteAddress hard-deletes an address after detaching it from links
func (h *ContragentHandler) DeleteAddress(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SearchCompanies searches the organization registry by name
func (h *ContragentHandler) SearchCompanies(c *gin.Context) {
	query := contragent.OrganizationQuery{Name: c.Query("name")}

	responses, err := h.organizationService.FindAll(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// UpdateCompany renames an organization and rewrites dependent search
// names
func (h *ContragentHandler) UpdateCompany(c *gin.Context) {
	var req contragentapp.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.organizationService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteCompany soft-deletes every link of an organization
func (h *ContragentHandler) DeleteCompany(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.organizationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetCompanyAddresses lists the active addresses of an organization
func (h *ContragentHandler) GetCompanyAddresses(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	responses, err := h.organizationService.GetAddresses(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// BindAddressWithCompany links a new or existing address to an
// organization
func (h *ContragentHandler) BindAddressWithCompany(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	var req contragentapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contragentService.BindAddressWithOrganization(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetCompanyEmployees lists the active employees of an organization
func (h *ContragentHandler) GetCompanyEmployees(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	responses, err := h.organizationService.GetEmployees(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// BindEmployee adds an employee to an organization without an address
func (h *ContragentHandler) BindEmployee(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	var req contragentapp.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contragentService.BindEmployeeWithOrganization(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// BindEmployeeWithAddress adds an employee together with an address
func (h *ContragentHandler) BindEmployeeWithAddress(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	var body struct {
		Employee contragentapp.EmployeeRequest `json:"employee" binding:"required"`
		Address  contragentapp.AddressRequest  `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contragentService.BindEmployeeWithAddress(c.Request.Context(), contragentapp.BindEmployeeWithAddressRequest{
		OrganizationID: id,
		Employee:       body.Employee,
		Address:        body.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SearchEmployees finds employee links by person name fields
func (h *ContragentHandler) SearchEmployees(c *gin.Context) {
	responses, err := h.contragentService.SearchEmployees(
		c.Request.Context(),
		c.Query("first_name"),
		c.Query("middle_name"),
		c.Query("last_name"),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// UpdateEmployee updates the person and position behind an employee link
func (h *ContragentHandler) UpdateEmployee(c *gin.Context) {
	var req contragentapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contragentService.UpdateEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteLink soft-deletes one link record
func (h *ContragentHandler) DeleteLink(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.contragentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
