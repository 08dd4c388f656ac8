package services

import (
	"strings"

	"genome-analysis-service/internal/core/domain"
)

// Source format identifiers accepted by ParseGenome. Anything else falls back
// to generic tab/comma detection.
const (
	Format23AndMe    = "23andme"
	FormatAncestry   = "ancestry"
	FormatMyHeritage = "myheritage"
	FormatFTDNA      = "ftdna"
	FormatGenera     = "genera"
	FormatNebula     = "nebula"
)

// ParseGenome parses raw genome export content into a variant map keyed by
// lowercase rsID. Comment lines, headers and malformed lines are skipped.
func ParseGenome(content, sourceFormat string) (map[string]domain.Variant, error) {
	variants := make(map[string]domain.Variant)

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "rsid") || strings.HasPrefix(lower, `"rsid`) {
			continue
		}

		v, ok := parseLine(line, sourceFormat)
		if !ok {
			continue
		}

		rsid := strings.ToLower(v.RSID)
		// VCF lines without an rsID carry a synthesized chrN:pos identifier.
		if strings.HasPrefix(rsid, "rs") || (sourceFormat == FormatNebula && strings.HasPrefix(rsid, "chr")) {
			v.RSID = rsid
			variants[rsid] = v
		}
	}

	if len(variants) == 0 {
		return nil, domain.ErrNoVariantsFound
	}

	return variants, nil
}

func parseLine(line, sourceFormat string) (domain.Variant, bool) {
	switch sourceFormat {
	case Format23AndMe:
		parts := strings.Split(line, "\t")
		if len(parts) >= 4 {
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
		}

	case FormatAncestry:
		parts := strings.Split(line, "\t")
		if len(parts) >= 5 {
			// Ancestry exports alleles in two columns; 0 marks a no-call.
			genotype := strings.ReplaceAll(parts[3]+parts[4], "0", "-")
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: genotype}, true
		}

	case FormatMyHeritage:
		parts := strings.Split(strings.ReplaceAll(line, `"`, ""), ",")
		if len(parts) >= 4 {
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
		}

	case FormatFTDNA:
		parts := strings.Split(line, ",")
		if len(parts) >= 4 {
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
		}

	case FormatGenera:
		var parts []string
		if strings.Contains(line, "\t") {
			parts = strings.Split(line, "\t")
		} else {
			parts = strings.Split(line, ",")
		}
		if len(parts) >= 4 {
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
		}

	case FormatNebula:
		return parseVCFLine(line)

	default:
		if strings.Contains(line, "\t") {
			parts := strings.Split(line, "\t")
			if len(parts) >= 4 {
				return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
			}
		}
		parts := strings.Split(line, ",")
		if len(parts) >= 4 {
			return domain.Variant{RSID: parts[0], Chromosome: parts[1], Position: parts[2], Genotype: parts[3]}, true
		}
	}

	return domain.Variant{}, false
}

// parseVCFLine resolves the sample genotype against REF/ALT for VCF exports.
func parseVCFLine(line string) (domain.Variant, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 10 {
		return domain.Variant{}, false
	}

	chrom := strings.TrimPrefix(parts[0], "chr")
	pos := parts[1]
	rsid := parts[2]
	if rsid == "." {
		rsid = "chr" + chrom + ":" + pos
	}
	ref := parts[3]
	alt := parts[4]

	formatFields := strings.Split(parts[8], ":")
	sampleFields := strings.Split(parts[9], ":")

	gtIndex := 0
	for i, f := range formatFields {
		if f == "GT" {
			gtIndex = i
			break
		}
	}
	if gtIndex >= len(sampleFields) {
		return domain.Variant{}, false
	}

	var genotype string
	switch sampleFields[gtIndex] {
	case "0/0", "0|0":
		genotype = ref + ref
	case "0/1", "0|1", "1/0", "1|0":
		genotype = ref + alt
	case "1/1", "1|1":
		genotype = alt + alt
	default:
		genotype = "--"
	}

	return domain.Variant{RSID: rsid, Chromosome: chrom, Position: pos, Genotype: genotype}, true
}
