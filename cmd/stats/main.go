package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	swchess "swchess/pkg/swchess"
)

type materialStats struct {
	binSize int
	bins    map[int]int
}

func newMaterialStats(binSize int) *materialStats {
	return &materialStats{
		binSize: binSize,
		bins:    make(map[int]int),
	}
}

// Add records one board by White's material lead over Black.
func (ms *materialStats) Add(lead int32) {
	value := int(lead)
	binStart := (value / ms.binSize) * ms.binSize
	if value < 0 && value%ms.binSize != 0 {
		binStart -= ms.binSize
	}
	ms.bins[binStart]++
}

type rejectTotals struct {
	malformed int
	invalid   int
	occupied  int
	capacity  int
}

func main() {
	boardDir := flag.String("dir", "", "input directory for board files")
	ext := flag.String("ext", ".txt", "board file extension used with -dir")
	parquetPath := flag.String("parquet", "", "input parquet file")
	binSize := flag.Int("bin-size", 500, "material lead bin size")
	flag.Parse()

	if *binSize <= 0 {
		fatal(fmt.Errorf("bin-size must be > 0"))
	}
	if (*boardDir == "") == (*parquetPath == "") {
		fatal(fmt.Errorf("specify exactly one of -dir or -parquet"))
	}

	var records []swchess.BoardRecord
	failed := 0
	if *parquetPath != "" {
		var err error
		records, err = swchess.ReadParquet(*parquetPath, 4)
		if err != nil {
			fatal(err)
		}
	} else {
		files, err := swchess.CollectBoards(*boardDir, *ext)
		if err != nil {
			fatal(err)
		}
		if len(files) == 0 {
			fatal(fmt.Errorf("no %s files found in %s", *ext, *boardDir))
		}
		for _, path := range files {
			record, err := swchess.BuildBoardRecord(*boardDir, path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
				failed++
				continue
			}
			records = append(records, record)
		}
	}

	statuses := make(map[string]int)
	standings := make(map[string]int)
	leads := newMaterialStats(*binSize)
	var rejects rejectTotals
	placed := 0
	for _, record := range records {
		statuses[record.Status]++
		standings[record.Standing]++
		leads.Add(record.WhiteMaterial - record.BlackMaterial)
		placed += int(record.Placed)
		rejects.malformed += int(record.Malformed)
		rejects.invalid += int(record.InvalidPlacement)
		rejects.occupied += int(record.OccupiedCell)
		rejects.capacity += int(record.CapacityExceeded)
	}

	if *parquetPath != "" {
		fmt.Printf("input parquet: %s\n", *parquetPath)
	} else {
		fmt.Printf("board dir: %s\n", *boardDir)
	}
	fmt.Printf("failed files: %d\n", failed)
	fmt.Printf("boards: %d\n", len(records))
	if len(records) > 0 {
		fmt.Printf("pieces placed: total=%d mean=%.2f\n", placed, float64(placed)/float64(len(records)))
	}
	fmt.Printf("dropped: malformed=%d invalid=%d occupied=%d capacity=%d\n",
		rejects.malformed, rejects.invalid, rejects.occupied, rejects.capacity)
	fmt.Println("status:")
	printCounts(statuses)
	fmt.Println("standing:")
	printCounts(standings)
	fmt.Printf("white material lead (bin size=%d):\n", leads.binSize)
	keys := make([]int, 0, len(leads.bins))
	for key := range leads.bins {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	for _, start := range keys {
		end := start + leads.binSize - 1
		fmt.Printf("%d..%d,%d\n", start, end, leads.bins[start])
	}
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %s,%d\n", key, counts[key])
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
