package seed

import (
	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
)

var catalog = []models.Product{
	{Name: "Apple Laptop", Price: 1299.99, Image: "/images/Apple_Laptop.jpg", Category: "Electronics", Description: "High-performance Apple laptop for professionals", Stock: 15, Rating: 4.8},
	{Name: "AirPods Case", Price: 49.99, Image: "/images/Earpods_case.jpg", Category: "Electronics", Description: "Protective case for your AirPods", Stock: 50, Rating: 4.5},
	{Name: "Coffee Mugs", Price: 19.99, Image: "/images/Mugs.jpg", Category: "Home & Kitchen", Description: "Premium ceramic coffee mugs set", Stock: 30, Rating: 4.4},
	{Name: "Cute Plushie", Price: 24.99, Image: "/images/Plushie.jpg", Category: "Toys & Games", Description: "Adorable soft plushie toy", Stock: 20, Rating: 4.7},
	{Name: "Body Suit", Price: 79.99, Image: "/images/body_suit.jpg", Category: "Fashion", Description: "Stylish and comfortable body suit", Stock: 25, Rating: 4.6},
	{Name: "Digital Camera", Price: 899.99, Image: "/images/digi_cam.jpg", Category: "Electronics", Description: "Professional digital camera with high resolution", Stock: 8, Rating: 4.7},
	{Name: "Fashion Rings", Price: 129.99, Image: "/images/rings.jpg", Category: "Jewelry", Description: "Beautiful fashion rings set", Stock: 12, Rating: 4.9},
	{Name: "Gaming Headset", Price: 149.99, Image: "/images/headset.jpg", Category: "Gaming", Description: "High-quality gaming headset with surround sound", Stock: 18, Rating: 4.5},
	{Name: "Smart Watch", Price: 299.99, Image: "/images/smart_watch.jpg", Category: "Electronics", Description: "Feature-rich smartwatch with health tracking", Stock: 22, Rating: 4.6},
	{Name: "Wireless Mouse", Price: 59.99, Image: "/images/mouse.jpg", Category: "Electronics", Description: "Ergonomic wireless mouse for productivity", Stock: 35, Rating: 4.4},
}

// Products inserts the starter catalog when the table is empty, so a fresh
// deployment has something to sell. Reports how many rows were inserted.
func Products(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seeded := make([]models.Product, len(catalog))
	copy(seeded, catalog)
	if err := db.Create(&seeded).Error; err != nil {
		return 0, err
	}
	return len(seeded), nil
}
