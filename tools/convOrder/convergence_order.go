package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/gofv/analytic_advection"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readCSV(f)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printStudies(os.Stdout, studies)
}

type ConvergenceStudy struct {
	title      string
	CFL        float64
	numCells   []int
	l2, lInf   []float64
	mse        []float64
	l2Orders   []float64
	lInfOrders []float64
}

func NewConvergenceStudy(title string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, l2, lInf, mse float64) {
	cs.numCells = append(cs.numCells, numCells)
	cs.l2 = append(cs.l2, l2)
	cs.lInf = append(cs.lInf, lInf)
	cs.mse = append(cs.mse, mse)
}

// Orders computes the observed order between successive resolutions, rows are sorted by cell count first
func (cs *ConvergenceStudy) Orders() {
	sort.Sort(cs)
	cs.l2Orders = make([]float64, len(cs.numCells))
	cs.lInfOrders = make([]float64, len(cs.numCells))
	for i := 1; i < len(cs.numCells); i++ {
		n1, n2 := cs.numCells[i-1], cs.numCells[i]
		cs.l2Orders[i] = analytic_advection.ConvergenceOrder(cs.l2[i-1], cs.l2[i], n1, n2)
		cs.lInfOrders[i] = analytic_advection.ConvergenceOrder(cs.lInf[i-1], cs.lInf[i], n1, n2)
	}
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.numCells) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numCells[i] < cs.numCells[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.numCells[i], cs.numCells[j] = cs.numCells[j], cs.numCells[i]
	cs.l2[i], cs.l2[j] = cs.l2[j], cs.l2[i]
	cs.lInf[i], cs.lInf[j] = cs.lInf[j], cs.lInf[i]
	cs.mse[i], cs.mse[j] = cs.mse[j], cs.mse[i]
}

// readCSV groups the rows written by "gofv convergence" by title and CFL
func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records           [][]string
		ok                bool
		cs                *ConvergenceStudy
		n                 int
		cfl, l2, lInf, ms float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(bufio.NewReader(r)).ReadAll(); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 6 {
			return nil, fmt.Errorf("line %d: have %d fields, need at least 6", i+1, len(rec))
		}
		title, ntxt, cfltxt := rec[0], rec[1], rec[2]
		if n, err = strconv.Atoi(ntxt); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for j, p := range []*float64{&cfl, &l2, &lInf, &ms} {
			if *p, err = strconv.ParseFloat(rec[j+2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		combTitle := title + cfltxt
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, cfl)
			studies[combTitle] = cs
		}
		cs.Add(n, l2, lInf, ms)
	}
	for _, cs := range studies {
		cs.Orders()
	}
	return
}

func printStudies(w io.Writer, studies map[string]*ConvergenceStudy) {
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cs := studies[key]
		fmt.Fprintf(w, "Title = %s, CFL = %5.2f\n", cs.title, cs.CFL)
		for i := range cs.numCells {
			fmt.Fprintf(w, "%d, %v, %v, %v, L2 Order = %5.3f, Linf Order = %5.3f\n",
				cs.numCells[i], cs.l2[i], cs.lInf[i], cs.mse[i], cs.l2Orders[i], cs.lInfOrders[i])
		}
	}
}
