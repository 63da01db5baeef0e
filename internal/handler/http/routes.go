package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, h.withRecovery, withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.withAuthRateLimit)
			r.Post("/api/users/register", h.register)
			r.Post("/api/users/login", h.login)
		})
		r.Post("/api/users/logout", h.logout)

		r.Get("/api/travel-map", h.listTravelMaps)
		r.Get("/api/travel-map/{id}", h.getTravelMap)

		r.Get("/api/travel-record/getNewTravelRecord", h.listPublicTravelRecords)
		r.Get("/api/travel-record/getTravelRecordDetail/{id}", h.getTravelRecordDetail)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.getProfile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Put("/api/users/nickname", h.updateNickname)
		r.Get("/api/users/my-photos", h.listMyPhotosGallery)

		r.Post("/api/travel-map", h.createTravelMap)
		r.Get("/api/travel-map/my-footprints", h.myFootprints)
		r.Get("/api/travel-map/my-cities", h.myCities)
		r.Put("/api/travel-map/{id}", h.renameTravelMap)
		r.Delete("/api/travel-map/{id}", h.deleteTravelMap)

		r.Post("/api/travel-record", h.createTravelRecord)
		r.Get("/api/travel-record/getMyTravelRecord", h.listMyTravelRecords)
		r.Post("/api/travel-record/updateTravelRecord/{id}", h.updateTravelRecord)
		r.Post("/api/travel-record/deleteTravelRecord/{id}", h.deleteTravelRecord)
		r.Get("/api/travel-record/getMyTimeline", h.myTimeline)

		r.Post("/api/travel-album", h.createTravelAlbum)
		r.Delete("/api/travel-album/{id}", h.deleteTravelAlbum)
		r.Get("/api/travel-album/my-photos", h.listMyPhotos)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
