package abaqus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/vesselmesh/mesh"
)

// ReadInp reads the *Node and *Element blocks of an Abaqus input deck
// back into a mesh. Material, section, assembly and step keywords are
// skipped. Node ids must form the contiguous range 1..N and every
// element must reference existing nodes.
func ReadInp(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseInp(file)
}

func parseInp(r io.Reader) (*mesh.Mesh, error) {
	var (
		scanner  = bufio.NewScanner(r)
		section  = ""
		vertices = make(map[int][]float64)
		elements = make(map[int][4]int)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "**") {
			continue
		}

		if strings.HasPrefix(line, "*") {
			keyword := strings.ToLower(strings.Fields(strings.ReplaceAll(line, ",", " "))[0])
			switch keyword {
			case "*node":
				section = "node"
			case "*element":
				section = "element"
			default:
				// Heading titles and keyword parameter lines carry no
				// mesh data.
				section = ""
			}
			continue
		}

		switch section {
		case "node":
			id, values, err := parseDataLine(line, 3)
			if err != nil {
				return nil, fmt.Errorf("bad node line %q: %v", line, err)
			}
			vertices[id] = values
		case "element":
			id, values, err := parseDataLine(line, 4)
			if err != nil {
				return nil, fmt.Errorf("bad element line %q: %v", line, err)
			}
			var conn [4]int
			for i, v := range values {
				conn[i] = int(v)
				if float64(conn[i]) != v {
					return nil, fmt.Errorf("element %d: non-integer node reference %g", id, v)
				}
			}
			elements[id] = conn
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("no *Node section found")
	}

	m := &mesh.Mesh{
		NumNodes:    len(vertices),
		NumElements: len(elements),
	}

	m.Vertices = make([][]float64, len(vertices))
	for id, v := range vertices {
		if id < 1 || id > len(vertices) {
			return nil, fmt.Errorf("node ids are not contiguous from 1: found id %d among %d nodes", id, len(vertices))
		}
		m.Vertices[id-1] = v
	}

	elemIDs := make([]int, 0, len(elements))
	for id := range elements {
		elemIDs = append(elemIDs, id)
	}
	sort.Ints(elemIDs)
	m.EToV = make([][4]int, 0, len(elements))
	for i, id := range elemIDs {
		if id != i+1 {
			return nil, fmt.Errorf("element ids are not contiguous from 1: found id %d at position %d", id, i+1)
		}
		conn := elements[id]
		for _, n := range conn {
			if n < 1 || n > m.NumNodes {
				return nil, fmt.Errorf("element %d references node %d, mesh has nodes 1..%d", id, n, m.NumNodes)
			}
		}
		m.EToV = append(m.EToV, conn)
	}
	return m, nil
}

// parseDataLine splits an "id, v1, v2, ..." data line and requires
// exactly want values after the id.
func parseDataLine(line string, want int) (id int, values []float64, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != want+1 {
		return 0, nil, fmt.Errorf("expected %d fields, got %d", want+1, len(fields))
	}
	if id, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, nil, fmt.Errorf("bad id: %v", err)
	}
	values = make([]float64, want)
	for i := 0; i < want; i++ {
		if values[i], err = strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64); err != nil {
			return 0, nil, fmt.Errorf("bad value %d: %v", i+1, err)
		}
	}
	return id, values, nil
}
