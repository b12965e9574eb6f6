package catalog

import "github.com/CHARAN123567888880/SyntaxRush/internal/model"

var builtinSnippets = []model.Snippet{
	{
		Language: model.LangJavaScript,
		Title:    "Array Methods",
		Code: `const numbers = [1, 2, 3, 4, 5];
const doubled = numbers.map(num => num * 2);
const sum = numbers.reduce((acc, curr) => acc + curr, 0);
const evenNumbers = numbers.filter(num => num % 2 === 0);`,
	},
	{
		Language: model.LangJavaScript,
		Title:    "Async Function",
		Code: `async function fetchData() {
    try {
        const response = await fetch('https://api.example.com/data');
        const data = await response.json();
        return data;
    } catch (error) {
        console.error('Error:', error);
    }
}`,
	},
	{
		Language: model.LangJavaScript,
		Title:    "Class Definition",
		Code: `class User {
    constructor(name, email) {
        this.name = name;
        this.email = email;
    }

    getInfo() {
        return ` + "`${this.name} (${this.email})`" + `;
    }

    static createAdmin(name) {
        return new User(name, ` + "`${name.toLowerCase()}@admin.com`" + `);
    }
}`,
	},
	{
		Language: model.LangJavaScript,
		Title:    "Promise Chain",
		Code: `function processUserData(userId) {
    return fetchUser(userId)
        .then(user => validateUser(user))
        .then(user => updateUserStatus(user))
        .then(user => saveUserData(user))
        .catch(error => handleError(error));
}`,
	},
	{
		Language: model.LangPython,
		Title:    "List Comprehension",
		Code: `numbers = [1, 2, 3, 4, 5]
squares = [num ** 2 for num in numbers]
even_numbers = [num for num in numbers if num % 2 == 0]`,
	},
	{
		Language: model.LangPython,
		Title:    "Class Definition",
		Code: `class Person:
    def __init__(self, name, age):
        self.name = name
        self.age = age

    def greet(self):
        return f"Hello, my name is {self.name} and I am {self.age} years old."`,
	},
	{
		Language: model.LangPython,
		Title:    "Decorator Pattern",
		Code: `def timer_decorator(func):
    def wrapper(*args, **kwargs):
        import time
        start = time.time()
        result = func(*args, **kwargs)
        end = time.time()
        print(f"Function {func.__name__} took {end - start} seconds")
        return result
    return wrapper

@timer_decorator
def slow_function():
    import time
    time.sleep(1)
    return "Done!"`,
	},
	{
		Language: model.LangPython,
		Title:    "Context Manager",
		Code: `class DatabaseConnection:
    def __init__(self, host, port):
        self.host = host
        self.port = port
        self.connection = None

    def __enter__(self):
        self.connection = connect(self.host, self.port)
        return self.connection

    def __exit__(self, exc_type, exc_val, exc_tb):
        if self.connection:
            self.connection.close()`,
	},
	{
		Language: model.LangJava,
		Title:    "Class with Interface",
		Code: `public class Calculator implements MathOperations {
    @Override
    public double add(double a, double b) {
        return a + b;
    }

    @Override
    public double subtract(double a, double b) {
        return a - b;
    }

    @Override
    public double multiply(double a, double b) {
        return a * b;
    }
}`,
	},
	{
		Language: model.LangJava,
		Title:    "Exception Handling",
		Code: `public class FileProcessor {
    public void processFile(String filename) {
        try (BufferedReader reader = new BufferedReader(new FileReader(filename))) {
            String line;
            while ((line = reader.readLine()) != null) {
                processLine(line);
            }
        } catch (IOException e) {
            logger.error("Error processing file: " + e.getMessage());
            throw new ProcessingException("Failed to process file", e);
        }
    }
}`,
	},
	{
		Language: model.LangJava,
		Title:    "Lambda Expressions",
		Code: `List<String> names = Arrays.asList("Alice", "Bob", "Charlie");
names.stream()
    .filter(name -> name.length() > 4)
    .map(String::toUpperCase)
    .forEach(System.out::println);`,
	},
	{
		Language: model.LangCpp,
		Title:    "Template Class",
		Code: `template<typename T>
class Stack {
private:
    std::vector<T> elements;
public:
    void push(T const& element) {
        elements.push_back(element);
    }

    T pop() {
        if (elements.empty()) {
            throw std::out_of_range("Stack is empty");
        }
        T element = elements.back();
        elements.pop_back();
        return element;
    }
};`,
	},
	{
		Language: model.LangCpp,
		Title:    "Smart Pointers",
		Code: `class Resource {
public:
    Resource() { std::cout << "Resource acquired\n"; }
    ~Resource() { std::cout << "Resource released\n"; }
};

void processResource() {
    std::unique_ptr<Resource> ptr = std::make_unique<Resource>();
}`,
	},
	{
		Language: model.LangCpp,
		Title:    "Move Semantics",
		Code: `class String {
private:
    char* data;
    size_t size;
public:
    String(String&& other) noexcept
        : data(other.data), size(other.size) {
        other.data = nullptr;
        other.size = 0;
    }

    String& operator=(String&& other) noexcept {
        if (this != &other) {
            delete[] data;
            data = other.data;
            size = other.size;
            other.data = nullptr;
            other.size = 0;
        }
        return *this;
    }
};`,
	},
}
