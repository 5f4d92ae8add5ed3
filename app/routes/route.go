package routes

import (
	"orderdesk/app/handlers"
	"orderdesk/app/middlewares"
	"orderdesk/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := handlers.NewRender()
	validate := validator.New()

	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db), rnd, validate)
	productHandler := handlers.NewProductHandler(services.NewProductService(db), rnd, validate)
	customerHandler := handlers.NewCustomerHandler(services.NewCustomerService(db), rnd, validate)
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(db), rnd, validate)
	orderItemHandler := handlers.NewOrderItemHandler(services.NewOrderItemService(db), rnd, validate)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.Add).Methods("POST")
	api.HandleFunc("/categories/{id}", categoryHandler.Find).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	api.HandleFunc("/categories/{categoryId}/products/{productId}", categoryHandler.Link).Methods("POST")
	api.HandleFunc("/categories/{categoryId}/products/{productId}", categoryHandler.Unlink).Methods("DELETE")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.Add).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.Find).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	api.HandleFunc("/products/{productId}/categories", categoryHandler.ListForProduct).Methods("GET")

	api.HandleFunc("/customers", customerHandler.List).Methods("GET")
	api.HandleFunc("/customers", customerHandler.Add).Methods("POST")
	api.HandleFunc("/customers/{id}", customerHandler.Find).Methods("GET")
	api.HandleFunc("/customers/{id}", customerHandler.Update).Methods("PUT")
	api.HandleFunc("/customers/{id}", customerHandler.Delete).Methods("DELETE")
	api.HandleFunc("/customers/{customerId}/orders", orderHandler.ListForCustomer).Methods("GET")

	api.HandleFunc("/orders", orderHandler.List).Methods("GET")
	api.HandleFunc("/orders", orderHandler.Add).Methods("POST")
	api.HandleFunc("/orders/{id}", orderHandler.Find).Methods("GET")
	api.HandleFunc("/orders/{id}", orderHandler.Update).Methods("PUT")
	api.HandleFunc("/orders/{id}", orderHandler.Delete).Methods("DELETE")

	api.HandleFunc("/order-items", orderItemHandler.List).Methods("GET")
	api.HandleFunc("/order-items", orderItemHandler.Add).Methods("POST")
	api.HandleFunc("/order-items/{id}", orderItemHandler.Find).Methods("GET")
	api.HandleFunc("/order-items/{id}", orderItemHandler.Update).Methods("PUT")
	api.HandleFunc("/order-items/{id}", orderItemHandler.Delete).Methods("DELETE")

	return router
}
