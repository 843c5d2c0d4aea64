package entity

// ChannelProfile is the public view of a user seen as a channel, with
// subscription counts derived from the subscriptions collection.
type ChannelProfile struct {
	ID                string `json:"_id"`
	Username          string `json:"username"`
	FullName          string `json:"fullname"`
	Email             string `json:"email"`
	Avatar            string `json:"avatar"`
	CoverImage        string `json:"coverImage"`
	SubscribersCount  int    `json:"subscribersCount"`
	SubscribedToCount int    `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"` // Whether the viewer subscribes to this channel.
}
