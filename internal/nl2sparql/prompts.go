package nl2sparql

const queryTypeDetectionPrompt = `
Classify the user's question into exactly ONE category:

- FACT_LOOKUP: Asking for a specific property of a named entity
  Examples: "When was Obama born?", "How long was WW2?", "What is the capital of France?"

- CLASS_QUERY: Asking for a list of things matching criteria
  Examples: "Cities in France with population > 1M", "Movies directed by Spielberg"

- AGGREGATION: Asking for counts, sums, or statistics
  Examples: "How many albums did Adele release?", "Total population of EU countries"

- COMPARISON: Comparing two or more entities
  Examples: "Who is older, Obama or Trump?", "Which city is larger, Paris or London?"

- DEFINITION: Asking what something or someone is
  Examples: "What is DBpedia?", "Who is Albert Einstein?", "What is the Eiffel Tower?"

- RELATIONSHIP: Finding how entities are connected
  Examples: "How are Obama and Biden related?", "What connects Apple and Steve Jobs?"

- SUPERLATIVE: Asking for extremes (largest, oldest, most, etc.)
  Examples: "Largest city in Germany", "Oldest university in the world", "Most populated country"

- BOOLEAN: Yes/no questions
  Examples: "Is Paris the capital of France?", "Did Einstein win a Nobel Prize?"

Reply with ONLY the category name in uppercase, nothing else.
`

// %d: number of classes to return.
const targetClassDetectionPrompt = `
You are an expert in DBpedia ontology and SPARQL.
Your task is to identify the most relevant DBpedia classes for a user's query.

Instructions:
- Analyze the user prompt to understand the main entities and concepts
- Return ONLY %d DBpedia class URIs (e.g., dbo:City, dbo:Person, dbo:Film)
- Order them by relevance (most relevant first)
- Separate each URI with a single space
- Do NOT include explanations, prefixes beyond "dbo:", or any additional text

Example format: dbo:City dbo:Place dbo:Region dbo:PopulatedPlace
`

// %s: question, entity, properties.
const factLookupPrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL query to retrieve a specific fact about an entity.

Rules:
- Select the most relevant property values from the available properties
- Use FILTER with language tags for string values (usually @en)
- Handle optional properties gracefully
- Return ONLY the SPARQL query, no explanations or markdown

Question: %s

Entity: %s

Available properties on this entity:
%s

Generate the SPARQL query:
`

// %s: question, target class, entities JSON, data properties, object properties.
const classQueryPrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL query to find instances of a class matching the user's criteria.

Rules:
- Use the provided target class as the main rdf:type
- Use the provided entities as constraints (e.g., dbo:country, dbo:birthPlace)
- Use the available properties for filtering and selection
- Include rdfs:label in SELECT with FILTER(lang(?label) = "en")
- Use OPTIONAL for properties that might not exist
- Add LIMIT 100 unless the question implies a specific count
- Return ONLY the SPARQL query, no explanations or markdown

Question: %s

Target class: %s

Known entities from question:
%s

Available data properties (numeric, dates, strings):
%s

Available object properties (relationships to other entities):
%s

Generate the SPARQL query:
`

// %s: question, target class, properties.
const aggregationPrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL query to perform aggregation operations (COUNT, SUM, AVG, MAX, MIN).

Rules:
- Use COUNT for counting instances
- Use SUM/AVG/MAX/MIN for numeric properties
- Use GROUP BY when aggregating by categories
- Filter results appropriately
- Return ONLY the SPARQL query, no explanations or markdown

Question: %s

Target class: %s

Available properties:
%s

Generate the SPARQL query:
`

// %s: question, entities JSON, properties.
const comparisonPrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL query to compare two or more entities.

Rules:
- Select the relevant property values for each entity
- Use the entities provided in the question
- Include rdfs:label for each entity with FILTER(lang(?label) = "en")
- For "who is older" use dbo:birthDate (older = earlier date)
- For "which is larger" use dbo:populationTotal or dbo:area
- Return values that allow comparison (dates, numbers)
- Order results to show the comparison clearly
- Return ONLY the SPARQL query, no explanations or markdown

Question: %s

Entities to compare:
%s

Available common properties:
%s

Generate the SPARQL query:
`

// %s: question, target class, properties.
const superlativePrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL query to find the extreme value (max, min, largest, oldest, etc.).

Rules:
- Use ORDER BY DESC/ASC with LIMIT 1
- Select the relevant numeric/date property
- Return ONLY the SPARQL query, no explanations

Question: %s

Target class: %s

Available properties:
%s

Generate the SPARQL query:
`

// %s: question, entity URIs.
const booleanPrompt = `
You are a SPARQL expert for DBpedia.

Generate a SPARQL ASK query to answer a yes/no question.

Rules:
- Use ASK { } syntax
- Return true if the pattern exists
- Return ONLY the SPARQL query, no explanations

Question: %s

Entities: %s

Generate the SPARQL query:
`
