package models

import "time"

type Order struct {
	ID      int        `json:"id" bson:"_id"`
	Lines   []CartLine `json:"lines" bson:"lines"`
	Name    string     `json:"name" bson:"name"`
	Address string     `json:"address" bson:"address"`
	City    string     `json:"city" bson:"city"`
	Zip     string     `json:"zip" bson:"zip"`
	Country string     `json:"country" bson:"country"`
	Date    time.Time  `json:"date" bson:"date"`
}

func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		if line.Product != nil {
			total += float64(line.Quantity) * line.Product.Price
		}
	}
	return total
}

type CreateOrderRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Address string `form:"address" json:"address" binding:"required"`
	City    string `form:"city" json:"city" binding:"required"`
	Zip     string `form:"zip" json:"zip" binding:"required"`
	Country string `form:"country" json:"country" binding:"required"`
}

func (r CreateOrderRequest) ToOrder() *Order {
	return &Order{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		Zip:     r.Zip,
		Country: r.Country,
	}
}
