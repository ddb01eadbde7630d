package help

const ColdstartYAML = `# biblesources Quick Start

commands:
  build: |
    biblesources build --languages languages.tsv

  build_selected: |
    biblesources build eng_webp fra_lsg

  offline_rebuild: |
    biblesources build --offline --languages languages.tsv

  extract_one_page: |
    biblesources extract raw/info/eng_webp.html

  license_tally: |
    biblesources licenses --shared

  list_runs: |
    biblesources db runs

  stored_record: |
    biblesources db record eng_webp

key_files:
  - "raw/info/<iso>_<EXT>.html (cached details pages, EXT is NONE when empty)"
  - "biblesources-results/sources.csv (one row per resolved source)"
  - "biblesources-results/sources.bib (BibTeX entry per row)"
  - "biblesources-results/summary-<date>.json (run totals and per-source status)"

record_fields:
  - language
  - language_in_source_language
  - dialect
  - title
  - title_in_source_language
  - abbreviation
  - copyright_notice
  - translator_or_contributor
  - license_raw
  - license_code
  - year
  - date

invariants:
  - "Pages containing the not-found marker produce no record"
  - "Pages with fewer than two tables produce an empty record"
  - "Unknown license phrases are kept as their own code"
  - "Row IDs are language slugs; repeats get 1, 2, 3... and HasVariant"

config:
  file: "config.yaml (optional, flags override it)"
  licenses: "Map of extra license phrase -> code entries"

error_behavior:
  - "Missing pages (404, 410, not-found marker) count as not_found"
  - "Sources missing from the language registry count as unresolved"
  - "Exit codes: 0=success, 1=one or more sources failed"
`
