package memstore

import (
	"github.com/carewise/carehome-directory/internal/domain/entities"
)

// DefaultCareHomes returns the seed catalog loaded at process start.
func DefaultCareHomes() []*entities.CareHome {
	return []*entities.CareHome{
		{
			ID:               1,
			Name:             "Sunrise Manor Senior Living",
			Description:      "Elegant assisted living community featuring spacious private suites, gourmet dining, and comprehensive wellness programs. Located in the heart of Pacific Heights with stunning city views.",
			Address:          "1234 Pacific Ave",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94109",
			Phone:            "(555) 123-4567",
			Email:            "info@sunrisemanor.com",
			Website:          "https://sunrisemanor.com",
			StartingPrice:    "4200",
			PriceDescription: "Starting price for private room",
			Latitude:         "37.7749",
			Longitude:        "-122.4194",
			Distance:         "1.2",
			Rating:           "4.8",
			ReviewCount:      127,
			CareTypes:        []string{entities.CareTypeAssistedLiving, entities.CareTypeMemoryCare},
			Amenities:        []string{"Pet Friendly", "24/7 Medical Staff", "Dining Room", "Garden/Outdoor Space", "Physical Therapy"},
			RoomTypes:        []string{"Private Room", "Studio Apartment"},
			BedAvailability:  entities.BedAvailableNow,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             true,
			PetFriendly:          true,
			WheelchairAccessible: true,
			MedicalStaff24_7:     true,
		},
		{
			ID:               2,
			Name:             "Golden Gate Gardens",
			Description:      "Award-winning senior community with beautiful garden courtyards and resort-style amenities. Offering both independent and assisted living options with exceptional dining and activities.",
			Address:          "2345 Richmond Blvd",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94118",
			Phone:            "(555) 234-5678",
			Email:            "contact@goldengategardens.com",
			Website:          "https://goldengategardens.com",
			StartingPrice:    "3800",
			PriceDescription: "Starting price for studio",
			Latitude:         "37.7849",
			Longitude:        "-122.4594",
			Distance:         "2.1",
			Rating:           "4.9",
			ReviewCount:      203,
			CareTypes:        []string{entities.CareTypeIndependentLiving, entities.CareTypeAssistedLiving},
			Amenities:        []string{"Garden Views", "Fitness Center", "Dining Room", "Wheelchair Accessible"},
			RoomTypes:        []string{"Studio Apartment", "One Bedroom", "Private Room"},
			BedAvailability:  entities.BedLimitedAvailability,
			Images: []string{
				"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             true,
			PetFriendly:          false,
			WheelchairAccessible: true,
			MedicalStaff24_7:     false,
		},
		{
			ID:               3,
			Name:             "Serenity Memory Care",
			Description:      "Specialized memory care facility designed specifically for residents with Alzheimer's and dementia. Features secure outdoor gardens, personalized care plans, and innovative therapeutic programs.",
			Address:          "3456 Mission Bay Dr",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94158",
			Phone:            "(555) 345-6789",
			Email:            "info@serenitymemorycare.com",
			Website:          "https://serenitymemorycare.com",
			StartingPrice:    "5600",
			PriceDescription: "Starting price for private suite",
			Latitude:         "37.7649",
			Longitude:        "-122.3894",
			Distance:         "0.8",
			Rating:           "4.7",
			ReviewCount:      89,
			CareTypes:        []string{entities.CareTypeMemoryCare},
			Amenities:        []string{"Secure Unit", "Art Therapy", "Garden/Outdoor Space", "24/7 Medical Staff"},
			RoomTypes:        []string{"Private Room", "Semi-Private"},
			BedAvailability:  entities.BedAvailableNow,
			Images: []string{
				"https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             false,
			PetFriendly:          false,
			WheelchairAccessible: true,
			MedicalStaff24_7:     true,
		},
		{
			ID:               4,
			Name:             "Harbor View Senior Living",
			Description:      "Luxury waterfront senior living community with panoramic bay views. Premium amenities include fine dining, spa services, and a rooftop terrace. High demand location with waiting list.",
			Address:          "4567 Marina Blvd",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94123",
			Phone:            "(555) 456-7890",
			Email:            "info@harborviewsl.com",
			Website:          "https://harborviewsl.com",
			StartingPrice:    "6500",
			PriceDescription: "Starting price for one bedroom",
			Latitude:         "37.8049",
			Longitude:        "-122.4394",
			Distance:         "3.4",
			Rating:           "4.9",
			ReviewCount:      156,
			CareTypes:        []string{entities.CareTypeIndependentLiving, entities.CareTypeAssistedLiving},
			Amenities:        []string{"Bay Views", "Concierge", "Spa Services", "Dining Room", "Fitness Center"},
			RoomTypes:        []string{"One Bedroom", "Studio Apartment", "Private Room"},
			BedAvailability:  entities.BedWaitlistOnly,
			Images: []string{
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             true,
			PetFriendly:          false,
			WheelchairAccessible: true,
			MedicalStaff24_7:     true,
		},
		{
			ID:               5,
			Name:             "Sunset Hills Assisted Living",
			Description:      "Warm and welcoming assisted living community with personalized care plans and engaging activities. Our dedicated staff provides 24/7 support in a home-like environment.",
			Address:          "5678 Sunset Blvd",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94122",
			Phone:            "(555) 567-8901",
			Email:            "info@sunsethills.com",
			Website:          "https://sunsethills.com",
			StartingPrice:    "3200",
			PriceDescription: "Starting price for shared room",
			Latitude:         "37.7549",
			Longitude:        "-122.4894",
			Distance:         "4.2",
			Rating:           "4.6",
			ReviewCount:      94,
			CareTypes:        []string{entities.CareTypeAssistedLiving},
			Amenities:        []string{"Pet Friendly", "Garden/Outdoor Space", "Physical Therapy", "Dining Room"},
			RoomTypes:        []string{"Semi-Private", "Private Room"},
			BedAvailability:  entities.BedAvailableNow,
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             false,
			PetFriendly:          true,
			WheelchairAccessible: true,
			MedicalStaff24_7:     true,
		},
		{
			ID:               6,
			Name:             "Bayshore Independent Living",
			Description:      "Active adult community for independent seniors who want to maintain their lifestyle while having access to services when needed. Resort-style amenities and social activities.",
			Address:          "6789 Bayshore Dr",
			City:             "San Francisco",
			State:            "CA",
			ZipCode:          "94124",
			Phone:            "(555) 678-9012",
			Email:            "info@bayshoreindependent.com",
			Website:          "https://bayshoreindependent.com",
			StartingPrice:    "2800",
			PriceDescription: "Starting price for studio apartment",
			Latitude:         "37.7349",
			Longitude:        "-122.3794",
			Distance:         "5.1",
			Rating:           "4.5",
			ReviewCount:      78,
			CareTypes:        []string{entities.CareTypeIndependentLiving},
			Amenities:        []string{"Fitness Center", "Swimming Pool", "Golf Course", "Dining Room", "Concierge"},
			RoomTypes:        []string{"Studio Apartment", "One Bedroom", "Two Bedroom"},
			BedAvailability:  entities.BedAvailableNow,
			Images: []string{
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Featured:             false,
			PetFriendly:          true,
			WheelchairAccessible: true,
			MedicalStaff24_7:     false,
		},
	}
}
