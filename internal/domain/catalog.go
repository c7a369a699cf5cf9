package domain

type Agency struct {
	ID      int64
	Name    string
	Address string
	Logo    string
}

type Hotel struct {
	ID        int64
	Name      string
	StarCount int
}

type Room struct {
	ID      int64
	HotelID int64
	Type    string
}

type City struct {
	ID   int64
	Name string
}

type Country struct {
	ID   int64
	Name string
}
