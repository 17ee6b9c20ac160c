// seedctl manages the demo dataset: create the tables, seed them, drop them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/febdev/feb_shop/internal/config"
	"github.com/febdev/feb_shop/internal/models"
	"github.com/febdev/feb_shop/internal/seed"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	switch os.Args[1] {
	case "create":
		// InitDB already migrated the tables.
		fmt.Println("Tables Created..")

	case "seed":
		productCount, userCount, err := seed.Run(db)
		if err != nil {
			log.Fatalf("seed error: %v", err)
		}
		fmt.Printf("%d Items in the Products Table seeded..\n", productCount)
		fmt.Printf("%d Items in the Users Table seeded..\n", userCount)

	case "drop":
		if err := db.Migrator().DropTable(&models.Product{}, &models.User{}); err != nil {
			log.Fatalf("drop error: %v", err)
		}
		fmt.Println("Tables Dropped..")

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seedctl <create|seed|drop>")
}
