package dtos

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type NotificationRouteResponse struct {
	Route string `json:"route"`
}
