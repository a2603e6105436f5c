package source

import "io"

// lastLines returns at most maxLines from the end of r using a ring buffer:
// one sequential pass, O(maxLines) memory regardless of file size, lines in
// original order.
func lastLines(r io.Reader, maxLines int) ([]string, error) {
	ring := make([]string, maxLines)
	scanner := newScanner(r)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
