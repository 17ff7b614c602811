// internal/prediction/catalog/static.go
package catalog

import "prediction-service/internal/models"

// LoadStatic builds the catalog from the embedded university database. This is
// the default source; file and postgres sources replace it by configuration.
func LoadStatic() (*Catalog, error) {
	return New(staticUniversities())
}

func staticUniversities() []models.UniversityRequirement {
	return []models.UniversityRequirement{
		{Name: "MIT", Ranking: 1, MinGPA: 3.8, MinGRETotal: 325, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.07, Selectivity: 0.95, Location: "Cambridge, MA", Type: "Private", Programs: []string{"computer science", "engineering", "physics", "mathematics"}},
		{Name: "Stanford University", Ranking: 2, MinGPA: 3.8, MinGRETotal: 330, MinTOEFL: 105, MinIELTS: 7.5, AcceptanceRate: 0.04, Selectivity: 0.98, Location: "Stanford, CA", Type: "Private", Programs: []string{"computer science", "engineering", "business", "medicine"}},
		{Name: "Harvard University", Ranking: 3, MinGPA: 3.9, MinGRETotal: 335, MinTOEFL: 110, MinIELTS: 8.0, AcceptanceRate: 0.03, Selectivity: 0.99, Location: "Cambridge, MA", Type: "Private", Programs: []string{"business", "law", "medicine", "public policy"}},
		{Name: "California Institute of Technology", Ranking: 4, MinGPA: 3.8, MinGRETotal: 328, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.06, Selectivity: 0.96, Location: "Pasadena, CA", Type: "Private", Programs: []string{"engineering", "physics", "chemistry", "mathematics"}},
		{Name: "University of California, Berkeley", Ranking: 5, MinGPA: 3.6, MinGRETotal: 315, MinTOEFL: 90, MinIELTS: 7.0, AcceptanceRate: 0.17, Selectivity: 0.85, Location: "Berkeley, CA", Type: "Public", Programs: []string{"computer science", "engineering", "business", "public policy"}},
		{Name: "Carnegie Mellon University", Ranking: 6, MinGPA: 3.7, MinGRETotal: 320, MinTOEFL: 95, MinIELTS: 7.0, AcceptanceRate: 0.15, Selectivity: 0.87, Location: "Pittsburgh, PA", Type: "Private", Programs: []string{"computer science", "engineering", "robotics", "business"}},
		{Name: "University of Washington", Ranking: 7, MinGPA: 3.5, MinGRETotal: 310, MinTOEFL: 92, MinIELTS: 7.0, AcceptanceRate: 0.52, Selectivity: 0.60, Location: "Seattle, WA", Type: "Public", Programs: []string{"computer science", "engineering", "medicine", "business"}},
		{Name: "Georgia Institute of Technology", Ranking: 8, MinGPA: 3.4, MinGRETotal: 308, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.25, Selectivity: 0.78, Location: "Atlanta, GA", Type: "Public", Programs: []string{"computer science", "engineering", "business"}},
		{Name: "University of Illinois at Urbana-Champaign", Ranking: 9, MinGPA: 3.3, MinGRETotal: 305, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.62, Selectivity: 0.55, Location: "Urbana, IL", Type: "Public", Programs: []string{"computer science", "engineering", "business"}},
		{Name: "University of Texas at Austin", Ranking: 10, MinGPA: 3.4, MinGRETotal: 308, MinTOEFL: 88, MinIELTS: 6.5, AcceptanceRate: 0.32, Selectivity: 0.72, Location: "Austin, TX", Type: "Public", Programs: []string{"computer science", "engineering", "business"}},
		{Name: "Cornell University", Ranking: 11, MinGPA: 3.6, MinGRETotal: 315, MinTOEFL: 95, MinIELTS: 7.0, AcceptanceRate: 0.11, Selectivity: 0.90, Location: "Ithaca, NY", Type: "Private", Programs: []string{"engineering", "business", "agriculture", "veterinary"}},
		{Name: "University of Michigan", Ranking: 12, MinGPA: 3.5, MinGRETotal: 310, MinTOEFL: 88, MinIELTS: 6.5, AcceptanceRate: 0.23, Selectivity: 0.80, Location: "Ann Arbor, MI", Type: "Public", Programs: []string{"engineering", "business", "medicine", "law"}},
		{Name: "Columbia University", Ranking: 13, MinGPA: 3.7, MinGRETotal: 320, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.06, Selectivity: 0.95, Location: "New York, NY", Type: "Private", Programs: []string{"business", "journalism", "engineering", "medicine"}},
		{Name: "Princeton University", Ranking: 14, MinGPA: 3.8, MinGRETotal: 325, MinTOEFL: 105, MinIELTS: 7.5, AcceptanceRate: 0.04, Selectivity: 0.98, Location: "Princeton, NJ", Type: "Private", Programs: []string{"engineering", "public policy", "economics", "physics"}},
		{Name: "Yale University", Ranking: 15, MinGPA: 3.8, MinGRETotal: 325, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.05, Selectivity: 0.97, Location: "New Haven, CT", Type: "Private", Programs: []string{"law", "medicine", "business", "drama"}},
		{Name: "University of California, San Diego", Ranking: 16, MinGPA: 3.3, MinGRETotal: 305, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.30, Selectivity: 0.75, Location: "San Diego, CA", Type: "Public", Programs: []string{"computer science", "engineering", "biology", "medicine"}},
		{Name: "University of California, Los Angeles", Ranking: 17, MinGPA: 3.4, MinGRETotal: 310, MinTOEFL: 87, MinIELTS: 7.0, AcceptanceRate: 0.12, Selectivity: 0.90, Location: "Los Angeles, CA", Type: "Public", Programs: []string{"engineering", "business", "medicine", "film"}},
		{Name: "New York University", Ranking: 18, MinGPA: 3.3, MinGRETotal: 305, MinTOEFL: 90, MinIELTS: 7.0, AcceptanceRate: 0.20, Selectivity: 0.82, Location: "New York, NY", Type: "Private", Programs: []string{"business", "law", "medicine", "arts"}},
		{Name: "University of Southern California", Ranking: 19, MinGPA: 3.4, MinGRETotal: 308, MinTOEFL: 90, MinIELTS: 6.5, AcceptanceRate: 0.16, Selectivity: 0.86, Location: "Los Angeles, CA", Type: "Private", Programs: []string{"engineering", "business", "film", "medicine"}},
		{Name: "Northwestern University", Ranking: 20, MinGPA: 3.6, MinGRETotal: 315, MinTOEFL: 95, MinIELTS: 7.0, AcceptanceRate: 0.09, Selectivity: 0.92, Location: "Evanston, IL", Type: "Private", Programs: []string{"business", "engineering", "journalism", "medicine"}},
		{Name: "University of Pennsylvania", Ranking: 21, MinGPA: 3.6, MinGRETotal: 318, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.08, Selectivity: 0.93, Location: "Philadelphia, PA", Type: "Private", Programs: []string{"business", "engineering", "medicine", "law"}},
		{Name: "Duke University", Ranking: 22, MinGPA: 3.7, MinGRETotal: 320, MinTOEFL: 98, MinIELTS: 7.0, AcceptanceRate: 0.08, Selectivity: 0.93, Location: "Durham, NC", Type: "Private", Programs: []string{"business", "engineering", "medicine", "law"}},
		{Name: "Johns Hopkins University", Ranking: 23, MinGPA: 3.6, MinGRETotal: 315, MinTOEFL: 95, MinIELTS: 7.0, AcceptanceRate: 0.11, Selectivity: 0.90, Location: "Baltimore, MD", Type: "Private", Programs: []string{"medicine", "engineering", "public health", "international relations"}},
		{Name: "Rice University", Ranking: 24, MinGPA: 3.5, MinGRETotal: 312, MinTOEFL: 90, MinIELTS: 6.5, AcceptanceRate: 0.11, Selectivity: 0.90, Location: "Houston, TX", Type: "Private", Programs: []string{"engineering", "business", "architecture", "music"}},
		{Name: "Vanderbilt University", Ranking: 25, MinGPA: 3.5, MinGRETotal: 312, MinTOEFL: 88, MinIELTS: 6.5, AcceptanceRate: 0.10, Selectivity: 0.91, Location: "Nashville, TN", Type: "Private", Programs: []string{"engineering", "business", "medicine", "education"}},
		{Name: "Arizona State University", Ranking: 26, MinGPA: 3.0, MinGRETotal: 290, MinTOEFL: 80, MinIELTS: 6.0, AcceptanceRate: 0.86, Selectivity: 0.30, Location: "Tempe, AZ", Type: "Public", Programs: []string{"engineering", "business", "journalism", "design"}},
		{Name: "Boston University", Ranking: 27, MinGPA: 3.2, MinGRETotal: 300, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.20, Selectivity: 0.82, Location: "Boston, MA", Type: "Private", Programs: []string{"business", "engineering", "medicine", "communications"}},
		{Name: "University of Florida", Ranking: 28, MinGPA: 3.1, MinGRETotal: 295, MinTOEFL: 80, MinIELTS: 6.0, AcceptanceRate: 0.37, Selectivity: 0.70, Location: "Gainesville, FL", Type: "Public", Programs: []string{"business", "engineering", "agriculture", "medicine"}},
		{Name: "Ohio State University", Ranking: 29, MinGPA: 3.0, MinGRETotal: 295, MinTOEFL: 79, MinIELTS: 6.0, AcceptanceRate: 0.54, Selectivity: 0.58, Location: "Columbus, OH", Type: "Public", Programs: []string{"business", "engineering", "agriculture", "medicine"}},
		{Name: "University of North Carolina at Chapel Hill", Ranking: 30, MinGPA: 3.3, MinGRETotal: 305, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.23, Selectivity: 0.80, Location: "Chapel Hill, NC", Type: "Public", Programs: []string{"business", "journalism", "public health", "medicine"}},
	}
}
