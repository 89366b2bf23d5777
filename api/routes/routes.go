package routes

import (
	"time"

	"campuseats/api/handler"
	"campuseats/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Restaurant     *handler.RestaurantHandler
	Admin          *handler.AdminHandler
	Order          *handler.OrderHandler
	Public         *handler.PublicHandler
	AuthMiddleware middleware.AuthMiddleware
	SignupRate     *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	restaurant *handler.RestaurantHandler,
	admin *handler.AdminHandler,
	order *handler.OrderHandler,
	public *handler.PublicHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Restaurant:     restaurant,
		Admin:          admin,
		Order:          order,
		Public:         public,
		AuthMiddleware: authMiddleware,
		SignupRate:     middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.GET("/", r.Public.Health)
	e.GET("/restaurants", r.Public.ListRestaurants)
	e.GET("/menu/:restaurantId", r.Public.RestaurantMenu)

	auth := e.Group("/auth")
	auth.POST("/signup", r.Auth.Signup, r.SignupRate.Middleware())
	auth.POST("/verify-email", r.Auth.VerifyEmail, r.SignupRate.Middleware())
	auth.POST("/resend-code", r.Auth.ResendCode, r.SignupRate.Middleware())
	auth.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
	auth.POST("/forgot-password", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	auth.POST("/reset-password", r.Auth.ResetPassword, r.SignupRate.Middleware())
	auth.GET("/profile", r.Auth.Profile, r.AuthMiddleware.RequireUser)
	auth.PATCH("/profile", r.Auth.UpdateProfile, r.AuthMiddleware.RequireUser)
	auth.POST("/meal-points", r.Auth.AddMealPoints, r.AuthMiddleware.RequireUser)

	restaurant := e.Group("/restaurant-auth")
	restaurant.POST("/signup", r.Restaurant.Signup, r.SignupRate.Middleware())
	restaurant.POST("/verify-email", r.Restaurant.VerifyEmail, r.SignupRate.Middleware())
	restaurant.POST("/resend-code", r.Restaurant.ResendCode, r.SignupRate.Middleware())
	restaurant.POST("/login", r.Restaurant.Login, r.LoginRate.Middleware())
	restaurant.POST("/forgot-password", r.Restaurant.ForgotPassword, r.LoginRate.Middleware())
	restaurant.POST("/reset-password", r.Restaurant.ResetPassword, r.SignupRate.Middleware())
	restaurant.GET("/me", r.Restaurant.Me, r.AuthMiddleware.RequireRestaurant)
	restaurant.GET("/orders", r.Restaurant.ListOrders, r.AuthMiddleware.RequireRestaurant)
	restaurant.PATCH("/orders/:id/status", r.Restaurant.UpdateOrderStatus, r.AuthMiddleware.RequireRestaurant)

	e.POST("/menu", r.Restaurant.AddMenuItem, r.AuthMiddleware.RequireRestaurant)

	admin := e.Group("/admin")
	admin.POST("/login", r.Admin.Login, r.LoginRate.Middleware())
	admin.POST("/login/mfa", r.Admin.LoginMFA, r.LoginRate.Middleware())
	admin.POST("/mfa/enable", r.Admin.EnableMFA, r.AuthMiddleware.RequireAdmin)
	admin.POST("/mfa/verify", r.Admin.VerifyMFA, r.AuthMiddleware.RequireAdmin)
	admin.POST("/mfa/disable", r.Admin.DisableMFA, r.AuthMiddleware.RequireAdmin)
	admin.GET("/restaurants", r.Admin.ListRestaurants, r.AuthMiddleware.RequireAdmin)
	admin.POST("/restaurants/:id/approve", r.Admin.ApproveRestaurant, r.AuthMiddleware.RequireAdmin)
	admin.POST("/restaurants/:id/reject", r.Admin.RejectRestaurant, r.AuthMiddleware.RequireAdmin)

	e.POST("/orders", r.Order.PlaceOrder, r.AuthMiddleware.RequireUser)
	e.GET("/orders", r.Order.ListMine, r.AuthMiddleware.RequireUser)
}
