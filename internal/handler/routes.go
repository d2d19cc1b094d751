// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"agrilink-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/market/prices",
				Handler: MarketPricesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/weather",
				Handler: WeatherHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/marketplace/listings",
				Handler: ListListingsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/marketplace/listings",
				Handler: CreateListingHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/marketplace/listings/:id",
				Handler: GetListingHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/marketplace/listings/:id/unavailable",
				Handler: MarkListingUnavailableHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/chats",
				Handler: ConversationsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chats",
				Handler: CreateConversationHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/chats/unread-count",
				Handler: UnreadCountHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/chats/:id/messages",
				Handler: MessagesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chats/:id/messages",
				Handler: SendMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chats/:id/read",
				Handler: MarkReadHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/support/questions",
				Handler: QuestionsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/support/questions",
				Handler: CreateQuestionHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/profiles/:id",
				Handler: ProfileHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/profiles/:id",
				Handler: UpdateProfileHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)
}
