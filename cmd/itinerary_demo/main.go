package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"andariego/internal/itinerary"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	generator := itinerary.NewGenerator(apiKey)
	if !generator.IsConfigured() {
		fmt.Println("GEMINI_API_KEY not set; printing the offline fallback itinerary.")
	}

	req := itinerary.Request{
		Destination: "Chiclayo",
		Days:        3,
		Interests:   []string{"Gastronomía", "Arqueología"},
		Budget:      itinerary.BudgetMedium,
	}

	it := generator.Generate(context.Background(), req)

	out, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		log.Fatalf("marshal itinerary: %v", err)
	}
	fmt.Println(string(out))
}
