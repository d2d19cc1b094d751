// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type MarketPricesReq struct {
	Region string `form:"region,optional"`
}

type MarketPrice struct {
	Crop      string  `json:"crop"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
	Change    float64 `json:"change"`
	Region    string  `json:"region"`
	UpdatedAt int64   `json:"updatedAt"`
}

type MarketPricesResp struct {
	Prices []MarketPrice `json:"prices"`
}

type WeatherReq struct {
	Location string `form:"location"`
}

type WeatherResp struct {
	Location     string `json:"location"`
	Condition    string `json:"condition"`
	Temperature  int    `json:"temperature"`
	Humidity     int    `json:"humidity"`
	ForecastDate string `json:"forecastDate"`
	UpdatedAt    int64  `json:"updatedAt"`
}

type ListListingsReq struct {
	Location string `form:"location,optional"`
	UserId   string `form:"userId,optional"`
}

type Listing struct {
	Id           string  `json:"id"`
	UserId       string  `json:"userId"`
	CropName     string  `json:"cropName"`
	Description  string  `json:"description,omitempty"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Location     string  `json:"location"`
	ContactPhone string  `json:"contactPhone,omitempty"`
	ImageUrl     string  `json:"imageUrl,omitempty"`
	IsAvailable  bool    `json:"isAvailable"`
	CreatedAt    int64   `json:"createdAt"`
}

type ListListingsResp struct {
	Listings []Listing `json:"listings"`
}

type CreateListingReq struct {
	UserId       string  `json:"userId"`
	CropName     string  `json:"cropName"`
	Description  string  `json:"description,optional"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,optional"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Location     string  `json:"location"`
	ContactPhone string  `json:"contactPhone,optional"`
	ImageUrl     string  `json:"imageUrl,optional"`
}

type ListingIdReq struct {
	Id string `path:"id"`
}

type ConversationsReq struct {
	UserId string `form:"userId"`
}

type Conversation struct {
	Id            string `json:"id"`
	PartnerId     string `json:"partnerId"`
	PartnerName   string `json:"partnerName"`
	LastMessage   string `json:"lastMessage,omitempty"`
	LastMessageAt int64  `json:"lastMessageAt,omitempty"`
	UnreadCount   int64  `json:"unreadCount"`
	UpdatedAt     int64  `json:"updatedAt"`
}

type ConversationsResp struct {
	Conversations []Conversation `json:"conversations"`
}

type CreateConversationReq struct {
	UserId    string `json:"userId"`
	PartnerId string `json:"partnerId"`
}

type CreateConversationResp struct {
	Id string `json:"id"`
}

type MessagesReq struct {
	Id string `path:"id"`
}

type Message struct {
	Id             string `json:"id"`
	ConversationId string `json:"conversationId"`
	UserId         string `json:"userId"`
	Content        string `json:"content"`
	ImageUrl       string `json:"imageUrl,omitempty"`
	Read           bool   `json:"read"`
	CreatedAt      int64  `json:"createdAt"`
}

type MessagesResp struct {
	Messages []Message `json:"messages"`
}

type SendMessageReq struct {
	Id       string `path:"id"`
	UserId   string `json:"userId"`
	Content  string `json:"content"`
	ImageUrl string `json:"imageUrl,optional"`
}

type MarkReadReq struct {
	Id     string `path:"id"`
	UserId string `json:"userId"`
}

type UnreadCountReq struct {
	UserId string `form:"userId"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}

type QuestionsReq struct {
	Category string `form:"category,optional"`
}

type Question struct {
	Id         string `json:"id"`
	UserId     string `json:"userId"`
	AuthorName string `json:"authorName,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
}

type QuestionsResp struct {
	Questions []Question `json:"questions"`
}

type CreateQuestionReq struct {
	UserId   string `json:"userId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,optional"`
}

type ProfileReq struct {
	Id string `path:"id"`
}

type Profile struct {
	Id     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Region string `json:"region,omitempty"`
}

type UpdateProfileReq struct {
	Id     string `path:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,optional"`
	Region string `json:"region,optional"`
}
