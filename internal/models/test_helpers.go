package models

// TestRecords returns a small fixed dataset for handler and analytics tests.
func TestRecords() []ProductRecord {
	return []ProductRecord{
		{Region: "Europe", Country: "Germany", Molecule: "Ibuprofen", Product: "Dolormin", Corporation: "J&J", RxOTC: "OTC", LaunchYear: "1989", ATC1: "M"},
		{Region: "Europe", Country: "Germany", Molecule: "Metformin", Product: "Glucophage", Corporation: "Merck", RxOTC: "RX", LaunchYear: "1995", ATC1: "A"},
		{Region: "Europe", Country: "France", Molecule: "Ibuprofen", Product: "Advil", Corporation: "Pfizer", RxOTC: "OTC", LaunchYear: "1992", ATC1: "M"},
		{Region: "Americas", Country: "Brazil", Molecule: "Omeprazole", Product: "Losec", Corporation: "AstraZeneca", RxOTC: "RX", LaunchYear: "2001", ATC1: "A"},
		{Region: "Americas", Country: "Mexico", Molecule: "Ibuprofen", Product: "Motrin", Corporation: "J&J", RxOTC: "OTC", LaunchYear: "1998", ATC1: "M"},
		{Region: "Asia", Country: "Japan", Molecule: "Rosuvastatin", Product: "Crestor", Corporation: "AstraZeneca", RxOTC: "RX", LaunchYear: "2003", ATC1: "C"},
		{Region: "Asia", Country: "Japan", Molecule: "Metformin", Product: "Metgluco", Corporation: "Sumitomo", RxOTC: "RX", LaunchYear: "", ATC1: "A"},
		{Region: "Europe", Country: "Spain", Molecule: "Paracetamol", Product: "Gelocatil", Corporation: "Ferrer", RxOTC: "OTC", LaunchYear: "n/a", ATC1: "N"},
	}
}

// TestColumns returns the column presence map matching TestRecords.
func TestColumns() map[Column]bool {
	columns := make(map[Column]bool, len(AllColumns))
	for _, c := range AllColumns {
		columns[c] = true
	}
	return columns
}
