package seed

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/febdev/feb_shop/internal/hash"
	"github.com/febdev/feb_shop/internal/models"
)

type seedProduct struct {
	Name        string
	Price       string
	Description string
	Stock       int
}

var seedProducts = []seedProduct{
	{"Smartphone", "$799", "High-performance smartphone with advanced camera features.", 35},
	{"Laptop", "$1299", "Lightweight laptop with exceptional battery life and powerful processor.", 20},
	{"Headphones", "$199", "Noise-cancelling headphones with superior sound quality.", 50},
	{"Smartwatch", "$349", "Stylish smartwatch with health and connectivity features.", 45},
	{"Tablet", "$499", "Versatile tablet perfect for entertainment and productivity.", 30},
	{"Camera", "$699", "Digital camera with high resolution and powerful zoom capabilities.", 25},
	{"Gaming Console", "$399", "Next-gen gaming console with immersive graphics and gameplay.", 40},
	{"Fitness Tracker", "$129", "Compact fitness tracker with sleep monitoring and GPS.", 60},
	{"Desktop Computer", "$999", "High-powered desktop perfect for gaming and professional use.", 15},
	{"Bluetooth Speaker", "$149", "Portable Bluetooth speaker with excellent sound clarity and bass.", 70},
	{"Wireless Earbuds", "$199", "True wireless earbuds with touch controls and long battery life.", 55},
	{"External Hard Drive", "$129", "High-capacity external hard drive, perfect for backups.", 40},
	{"Printer", "$249", "Efficient multi-functional printer for home or office use.", 30},
	{"Electric Toothbrush", "$79", "Electric toothbrush with multiple brushing modes and timer.", 90},
	{"Air Purifier", "$299", "High-efficiency air purifier to enhance indoor air quality.", 35},
	{"Coffee Maker", "$129", "Fast-brewing coffee maker with customizable strength settings.", 45},
	{"Robot Vacuum Cleaner", "$349", "Smart robot vacuum cleaner with multi-room navigation.", 38},
	{"Wireless Router", "$99", "High-speed wireless router with extensive coverage and security features.", 65},
	{"Smart Thermostat", "$199", "Energy-efficient smart thermostat with remote control capabilities.", 50},
	{"Bluetooth Headset", "$79", "Lightweight Bluetooth headset with clear audio and long battery life.", 75},
}

type seedUser struct {
	Name    string
	Email   string
	IsAdmin bool
}

var seedUsers = []seedUser{
	{"User 1", "user1@email.com", false},
	{"Admin User", "admin@email.com", true},
	{"User 2", "user2@email.com", false},
	{"User 3", "user3@email.com", false},
	{"User 4", "user4@email.com", false},
}

const seedUserPassword = "123456"

// Products returns the demo catalog. Prices are kept in their display form
// ("$799") in the table above and parsed here.
func Products() ([]models.Product, error) {
	products := make([]models.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		price, err := strconv.ParseFloat(strings.TrimPrefix(sp.Price, "$"), 64)
		if err != nil {
			return nil, fmt.Errorf("seed: bad price %q for %q: %w", sp.Price, sp.Name, err)
		}
		products = append(products, models.Product{
			Name:        sp.Name,
			Description: sp.Description,
			Price:       price,
			Stock:       sp.Stock,
		})
	}
	return products, nil
}

func Users() ([]models.User, error) {
	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		pwHash, err := hash.HashPassword(seedUserPassword)
		if err != nil {
			return nil, fmt.Errorf("seed: hash password for %q: %w", su.Email, err)
		}
		users = append(users, models.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: pwHash,
			IsAdmin:      su.IsAdmin,
		})
	}
	return users, nil
}

// Run loads the demo catalog and users and returns the inserted counts.
func Run(db *gorm.DB) (int, int, error) {
	products, err := Products()
	if err != nil {
		return 0, 0, err
	}
	if err := db.Create(&products).Error; err != nil {
		return 0, 0, fmt.Errorf("seed: insert products: %w", err)
	}

	users, err := Users()
	if err != nil {
		return len(products), 0, err
	}
	if err := db.Create(&users).Error; err != nil {
		return len(products), 0, fmt.Errorf("seed: insert users: %w", err)
	}

	return len(products), len(users), nil
}
